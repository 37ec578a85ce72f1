package lexicon

// Spanish word lists.
var Spanish = Language{
	Code: "es",
	Connectives: map[Class][]string{
		Causal: {
			"por", "porque", "a causa de", "puesto que", "con motivo de",
			"pues", "ya que", "conque", "luego", "por consiguiente",
			"así que", "en consecuencia", "de manera que", "tan",
			"tanto que", "por lo tanto", "de modo que",
		},
		Logical: {
			"y", "o",
		},
		Adversative: {
			"pero", "sino", "no obstante", "sino que", "sin embargo",
			"pero sí", "aunque", "menos", "solo", "excepto", "salvo",
			"más que", "en cambio", "ahora bien", "más bien",
		},
		Temporal: {
			"actualmente", "ahora", "después", "más tarde", "más adelante",
			"a continuación", "antes", "mientras", "érase una vez",
			"hace mucho tiempo", "tiempo antes", "finalmente",
			"inicialmente", "ya", "simultáneamente", "previamente",
			"anteriormente", "posteriormente", "al mismo tiempo", "durante",
		},
		Additive: {
			"asimismo", "igualmente", "de igual modo", "de igual manera",
			"de igual forma", "del mismo modo", "de la misma manera",
			"de la misma forma", "en primer lugar", "en segundo lugar",
			"en tercer lugar", "en último lugar", "por su parte",
			"por otro lado", "además", "encima", "es más",
			"por añadidura", "incluso", "inclusive", "para colmo",
		},
	},
	Negation: []string{"no", "nunca", "jamás", "tampoco"},
}
