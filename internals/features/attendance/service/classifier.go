package service

import (
	"regexp"
	"strings"

	helper "restaurante_backend/internals/helpers"
)

// LateReason is the classified justification used by the admin charts.
type LateReason struct {
	Category string
	Score    int // confidence, 0..100
}

type reasonRule struct {
	category string
	score    int
	rx       *regexp.Regexp
}

// Ordered rules, first match wins (not best match). Patterns run against
// the lowercased, diacritic-stripped justification, so "Tráfico" and
// "trafico" hit the same rule.
var reasonRules = []reasonRule{
	{"Tráfico", 95, regexp.MustCompile(`trafic|atasc|embotell|congestion|choque|accident|bloque|paraliz|desvio`)},
	{"Transporte", 92, regexp.MustCompile(`bus|micro|combi|colectivo|metro|tren|mototaxi|taxi|paradero|transporte|vehicul|auto`)},
	{"Salud", 92, regexp.MustCompile(`salud|medic|doctor|doctora|cita|clinica|hospital|fiebre|dolor|enferm|farmaci|odont|dental|analisis|prueba|psicolog|terapia`)},
	{"Documentos", 90, regexp.MustCompile(`tramite|tramites|document|dni|reniec|notari|banco|sunat|licencia|certific|constancia|registro|pago`)},
	{"Permiso", 88, regexp.MustCompile(`permiso|autoriz|me autoriz|licencia laboral`)},
	{"Familiar", 88, regexp.MustCompile(`hijo|hija|famil|mama|papa|abuela|abuelo|esposa|esposo|pareja|colegi|escuela|jardin|guarderia|velorio|funeral|emergencia familiar`)},
}

const (
	fallbackCategory = "Otros"
	fallbackScore    = 50
)

// ClassifyLateReason maps a justification text to a reason category with a
// fixed confidence score. Pure and deterministic: same input, same output.
func ClassifyLateReason(text string) LateReason {
	t := strings.ToLower(helper.StripDiacritics(text))
	for _, r := range reasonRules {
		if r.rx.MatchString(t) {
			return LateReason{Category: r.category, Score: r.score}
		}
	}
	return LateReason{Category: fallbackCategory, Score: fallbackScore}
}
