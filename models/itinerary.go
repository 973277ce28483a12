package models

import "time"

// Itinerary statuses
const (
	StatusPending    = "pending"
	StatusDraft      = "draft"
	StatusPublished  = "published"
	StatusArchived   = "archived"
	StatusRestricted = "restricted"
	StatusDeleted    = "deleted"
)

var ValidStatuses = []string{
	StatusPending, StatusDraft, StatusPublished,
	StatusArchived, StatusRestricted, StatusDeleted,
}

// Itinerary represents a user-authored travel plan composed of ordered days.
type Itinerary struct {
	ItineraryID      string    `json:"itineraryid" bson:"itineraryid" gorm:"primaryKey;column:itinerary_id"`
	CreatorID        string    `json:"creatorId" bson:"creatorid" gorm:"column:creator_id;index"`
	CreatorName      string    `json:"creatorName,omitempty" bson:"creatorname,omitempty" gorm:"column:creator_name"`
	Status           string    `json:"status" bson:"status" gorm:"column:status;index"`
	Title            string    `json:"title" bson:"title" gorm:"column:title"`
	ShortDescription string    `json:"shortDescription" bson:"shortdescription" gorm:"column:short_description"`
	MainImage        string    `json:"mainImage,omitempty" bson:"mainimage,omitempty" gorm:"column:main_image"`
	Duration         int       `json:"duration" bson:"duration" gorm:"column:duration"`
	Countries        []string  `json:"countries" bson:"countries" gorm:"column:countries;serializer:json"`
	Continents       []string  `json:"continents,omitempty" bson:"continents,omitempty" gorm:"column:continents;serializer:json"`
	ActivityTags     []string  `json:"activityTags,omitempty" bson:"activitytags,omitempty" gorm:"column:activity_tags;serializer:json"`
	ItineraryTags    []string  `json:"itineraryTags,omitempty" bson:"itinerarytags,omitempty" gorm:"column:itinerary_tags;serializer:json"`
	Days             []Day     `json:"days" bson:"days" gorm:"column:days;serializer:json"`
	Notes            []Note    `json:"notes,omitempty" bson:"notes,omitempty" gorm:"column:notes;serializer:json"`
	// Price is in cents; the stored value is authoritative at checkout.
	Price     int64     `json:"price" bson:"price" gorm:"column:price"`
	Views     int64     `json:"views" bson:"views" gorm:"column:views"`
	Rating    float64   `json:"rating" bson:"rating" gorm:"column:rating"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedat" gorm:"column:updated_at"`
}

func (Itinerary) TableName() string { return "itineraries" }

// Day is one ordered segment of an itinerary.
type Day struct {
	Position         int        `json:"position" bson:"position"`
	City             string     `json:"city" bson:"city"`
	Country          string     `json:"country" bson:"country"`
	Title            string     `json:"title" bson:"title"`
	Description      string     `json:"description,omitempty" bson:"description,omitempty"`
	Notes            string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Activities       []Activity `json:"activities" bson:"activities"`
	HasAccommodation bool       `json:"hasAccommodation" bson:"hasaccommodation"`
	// At most one per day, present only when HasAccommodation is set.
	Accommodation *Accommodation `json:"accommodation,omitempty" bson:"accommodation,omitempty"`
}

// Activity belongs to exactly one day.
type Activity struct {
	Title       string `json:"title" bson:"title"`
	Time        string `json:"time,omitempty" bson:"time,omitempty"`
	Duration    string `json:"duration,omitempty" bson:"duration,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
	Price       int64  `json:"price,omitempty" bson:"price,omitempty"`
	Photo       string `json:"photo,omitempty" bson:"photo,omitempty"`
}

type Accommodation struct {
	Name        string `json:"name" bson:"name"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Price       int64  `json:"price,omitempty" bson:"price,omitempty"`
}

type Note struct {
	Title string `json:"title" bson:"title"`
	Body  string `json:"body" bson:"body"`
}
