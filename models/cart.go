package models

import "time"

// CartItem is a client-held cart line. Price here is display-only:
// checkout always re-reads the stored itinerary price.
type CartItem struct {
	ItineraryID     string `json:"itineraryId" bson:"itineraryid"`
	Title           string `json:"title" bson:"title"`
	Price           int64  `json:"price" bson:"price"`
	MainImage       string `json:"mainImage,omitempty" bson:"mainimage,omitempty"`
	CreatorName     string `json:"creatorName,omitempty" bson:"creatorname,omitempty"`
	CreatorUsername string `json:"creatorUsername,omitempty" bson:"creatorusername,omitempty"`
}

// Purchase links a user to a purchased itinerary.
type Purchase struct {
	UserID      string    `json:"userId" bson:"userid" gorm:"column:user_id;index:idx_purchase,unique"`
	ItineraryID string    `json:"itineraryId" bson:"itineraryid" gorm:"column:itinerary_id;index:idx_purchase,unique"`
	SessionID   string    `json:"sessionId,omitempty" bson:"sessionid,omitempty" gorm:"column:session_id"`
	AmountPaid  int64     `json:"amountPaid" bson:"amountpaid" gorm:"column:amount_paid"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdat" gorm:"column:created_at"`
}

func (Purchase) TableName() string { return "itinerary_purchases" }
