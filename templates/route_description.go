package templates

import (
	"math/rand"
	"strconv"
	"strings"
	"text/template"

	"voyagebj-service/internal/domain/entity"
)

// MissingEndpointsText is returned when a route has no endpoints to describe
const MissingEndpointsText = "Veuillez d'abord renseigner les villes de départ (Point A) et d'arrivée (Point B) pour générer une description."

var funcs = template.FuncMap{
	"price": func(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) },
	"days": func(days []entity.DayCode) string {
		parts := make([]string, len(days))
		for i, d := range days {
			parts[i] = string(d)
		}
		return strings.Join(parts, ", ")
	},
}

var descriptionTemplates = parseAll(
	`Voyagez confortablement de {{.PointA}} à {{.PointB}} avec {{or .CompanyName "notre compagnie"}}. Un trajet sécurisé et ponctuel au départ de {{or .Location "notre gare"}}, le tout pour seulement {{price .Price}} FCFA. Profitez de nos services de qualité supérieure.`,
	`Découvrez l'excellence du transport sur la ligne {{.PointA}} - {{.PointB}}. Nos bus climatisés vous attendent à {{or .Location "la gare"}} pour un départ rapide. Prix du ticket : {{price .Price}} FCFA. Une expérience de voyage inoubliable vous attend.`,
	`{{.Name}} : La solution idéale pour vos déplacements vers {{.PointB}}. Profitez d'un service client irréprochable et d'un confort optimal. Réservez dès maintenant votre place à {{price .Price}} FCFA. Nous mettons tout en œuvre pour votre satisfaction.`,
	`Besoin d'aller à {{.PointB}} ? Partez de {{.PointA}} en toute sérénité. Nous assurons des départs réguliers les {{or (days .WorkDays) "jours ouvrables"}}. Tarif exceptionnel de {{price .Price}} FCFA. Ponctualité et sécurité garanties.`,
	`Rejoignez {{.PointB}} depuis {{.PointA}} sans tracas. {{or .CompanyName "L'agence"}} vous garantit sécurité et rapidité. Rendez-vous à {{.Location}} pour le départ. Embarquez pour un voyage agréable et reposant.`,
	`Offre spéciale voyage : {{.PointA}} vers {{.PointB}}. Un parcours direct pensé pour votre confort. Tickets disponibles à {{price .Price}} FCFA. Embarquement immédiat ! Ne manquez pas cette opportunité de voyager mieux.`,
	`Cap sur {{.PointB}} ! Au départ de {{.PointA}}, vivez une expérience de voyage unique avec {{or .CompanyName "nous"}}. Confort, climatisation et sécurité sont au rendez-vous pour seulement {{price .Price}} FCFA. Réservez votre siège dès aujourd'hui !`,
	`Trajet {{.PointA}} ➔ {{.PointB}} : La référence du transport interurbain. Départ de {{or .Location "notre agence"}} avec des horaires respectés. {{if .PricePremium}}Optez pour notre classe Premium à {{price .PricePremium}} FCFA pour un confort absolu.{{else}}Un rapport qualité/prix imbattable à {{price .Price}} FCFA.{{end}}`,
	`Envie de visiter {{.PointB}} ? Laissez-vous transporter depuis {{.PointA}} dans nos autocars modernes. Wi-Fi, sièges inclinables et ambiance zen. Départ garanti les {{or (days .WorkDays) "jours de semaine"}}.`,
	`Voyagez l'esprit léger entre {{.PointA}} et {{.PointB}}. {{or .CompanyName "Notre équipe"}} s'occupe de tout. Départ : {{or .Location "Gare centrale"}}. Arrivée en toute sécurité. Tarif standard : {{price .Price}} FCFA.`,
)

func parseAll(texts ...string) []*template.Template {
	parsed := make([]*template.Template, len(texts))
	for i, text := range texts {
		parsed[i] = template.Must(template.New("description").Funcs(funcs).Parse(text))
	}
	return parsed
}

// DescriptionCount is the number of available route descriptions
func DescriptionCount() int {
	return len(descriptionTemplates)
}

// DescribeRouteWith renders description number index (modulo the count) for node
func DescribeRouteWith(node entity.Station, index int) (string, error) {
	if node.PointA == "" || node.PointB == "" {
		return MissingEndpointsText, nil
	}
	if index < 0 {
		index = -index
	}
	return render(descriptionTemplates[index%len(descriptionTemplates)], node)
}

// DescribeRoute renders a randomly chosen commercial description for node
func DescribeRoute(node entity.Station) (string, error) {
	return DescribeRouteWith(node, rand.Intn(len(descriptionTemplates)))
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
