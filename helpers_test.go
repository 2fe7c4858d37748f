package namegen_test

var romans = []string{
	"Aulus", "Appius", "Decimus", "Gaius", "Gnaeus", "Lucius", "Marcus", "Manius",
	"Numerius", "Publius", "Quintus", "Servius", "Sextus", "Spurius", "Tiberius", "Titus",
	"Aemilia", "Aurelia", "Caecilia", "Claudia", "Cornelia", "Fabia", "Flavia", "Julia",
	"Junia", "Livia", "Octavia", "Pompeia", "Sempronia", "Valeria", "Agrippa", "Antonius",
	"Brutus", "Caesar", "Cato", "Cicero", "Crassus", "Drusus", "Gracchus", "Lepidus",
	"Maximus", "Nero", "Rufus", "Scipio", "Seneca", "Sulla", "Varro",
}

var dwarfs = []string{"dopey", "sneezy", "bashful", "sleepy", "happy", "grumpy", "doc"}

// alphabetOf returns the set of runes used by words, lowercased input assumed.
func alphabetOf(words []string) map[rune]bool {
	set := make(map[rune]bool)
	for _, w := range words {
		for _, r := range w {
			set[r] = true
		}
	}
	return set
}
