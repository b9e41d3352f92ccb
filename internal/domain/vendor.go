package domain

import "time"

type Vendor struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Subdomain      string    `json:"subdomain"`
	WhatsappNumber string    `json:"whatsappNumber"`
	UpiID          string    `json:"upiId"`
	Address        string    `json:"address"`
	CreatedAt      time.Time `json:"createdAt"`
}
