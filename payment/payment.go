package payment

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"lms/models"
)

// Gateway charges a user for a paid course through the configured payment
// endpoint. It is a black box to the rest of the system: a nil error is the
// success signal, anything else means the purchase was abandoned and no
// state changes.
type Gateway struct {
	client *resty.Client
	url    string
}

// NewGateway builds a payment gateway client for the given endpoint URL.
func NewGateway(url string) *Gateway {
	client := resty.New().SetTimeout(10 * time.Second)
	return &Gateway{client: client, url: url}
}

// Charge submits a charge for the course price on behalf of the user.
func (g *Gateway) Charge(userID string, course models.Course) error {
	resp, err := g.client.R().
		SetFormData(map[string]string{
			"user_id":   userID,
			"course_id": course.ID,
			"amount":    fmt.Sprintf("%.2f", course.Price),
		}).
		Post(g.url)
	if err != nil {
		log.Printf("Error while charging course %s for user %s: %v", course.ID, userID, err)
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		log.Printf("Payment declined for course %s, response code: %d", course.ID, resp.StatusCode())
		return fmt.Errorf("payment declined, code: %d", resp.StatusCode())
	}

	return nil
}
