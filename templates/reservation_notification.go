package templates

import (
	"text/template"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/pkg/utils"
)

var bookedText = template.Must(template.New("booked").Funcs(template.FuncMap{
	"fcfa": utils.FormatPrice,
}).Parse(`Bonjour {{.ClientName}},

Votre réservation {{.ID}} est enregistrée.
Trajet : {{.RouteSummary}}
Départ : {{.DepartureDate}} à {{.DepartureTime}}
Classe : {{.TicketClass}}
Montant : {{fcfa .PricePaid}}

Présentez ce message au guichet pour régler et embarquer.
VoyageBj`))

var fulfilledText = template.Must(template.New("fulfilled").Parse(`Bonjour {{.ClientName}},

Votre voyage {{.RouteSummary}} du {{.DepartureDate}} est réglé et terminé.
Merci d'avoir voyagé avec VoyageBj.`))

// ReservationSubject returns the email subject for a notification type
func ReservationSubject(kind entity.PayloadType, reservation entity.Reservation) string {
	if kind == entity.ReservationFulfilled {
		return "Voyage terminé : " + reservation.RouteSummary
	}
	return "Réservation confirmée : " + reservation.RouteSummary
}

// ReservationText renders the message body for a notification type
func ReservationText(kind entity.PayloadType, reservation entity.Reservation) (string, error) {
	if kind == entity.ReservationFulfilled {
		return render(fulfilledText, reservation)
	}
	return render(bookedText, reservation)
}
