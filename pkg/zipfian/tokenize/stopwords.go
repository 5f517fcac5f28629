package tokenize

// DefaultRussianStopwords returns the built-in closed-class word list
// for Russian: conjunctions, prepositions and common particles. The
// returned slice is a fresh copy; callers may modify it freely.
func DefaultRussianStopwords() []string {
	return []string{
		// simple conjunctions
		"и", "а", "но", "или", "либо", "да", "то", "что", "чтоб", "чтобы",
		"как", "если", "когда", "хотя", "однако", "потому", "зато",
		// fused compound forms
		"тоесть", "таккак", "потомучто",
		// prepositions
		"в", "во", "на", "с", "со", "к", "ко", "о", "об", "обо",
		"от", "до", "из", "изо", "перед", "передо", "за", "под", "подо",
		"над", "надо", "при", "для", "через", "между", "по", "у", "без",
		"около", "возле", "напод", "про",
		// particles
		"же", "ли", "бы", "вот",
	}
}
