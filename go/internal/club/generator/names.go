package generator

// Fixed name pools. 40x40 combinations comfortably cover a 20-player draw.
var firstNames = []string{
	"Aleix", "Anders", "Andres", "Bruno", "Carlos", "Dario", "Diego", "Dmitri",
	"Eden", "Emil", "Enzo", "Felipe", "Fernando", "Gianni", "Hugo", "Ilkay",
	"Ivan", "Jakub", "Joao", "Jonas", "Juan", "Kasper", "Kylian", "Leon",
	"Luca", "Lukas", "Marco", "Mateo", "Mathis", "Milan", "Nicolas", "Oscar",
	"Pablo", "Rafael", "Romain", "Sergio", "Thiago", "Timo", "Viktor", "Yannick",
}

var lastNames = []string{
	"Almeida", "Andersen", "Becker", "Bernard", "Carvalho", "Costa", "Dubois",
	"Fernandez", "Ferrari", "Fischer", "Fontaine", "Garcia", "Hansen", "Hernandez",
	"Hoffmann", "Ivanov", "Jansen", "Keller", "Kovac", "Larsen", "Lombardi",
	"Lopez", "Martin", "Mendes", "Moreau", "Moretti", "Novak", "Oliveira",
	"Petrov", "Ribeiro", "Ricci", "Rodriguez", "Rossi", "Santos", "Schmidt",
	"Silva", "Torres", "Vargas", "Weber", "Zielinski",
}
