package models

import "time"

type User struct {
	UserID        string    `json:"userid" bson:"userid" gorm:"primaryKey;column:user_id"`
	Username      string    `json:"username" bson:"username" gorm:"column:username;uniqueIndex"`
	Email         string    `json:"email" bson:"email" gorm:"column:email;uniqueIndex"`
	Password      string    `json:"-" bson:"password" gorm:"column:password"`
	Verified      bool      `json:"verified" bson:"verified" gorm:"column:verified"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty" gorm:"column:refresh_token"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty" gorm:"column:refresh_expiry"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty" gorm:"column:last_login"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdat" gorm:"column:created_at"`
}

func (User) TableName() string { return "users" }

// Follow is one row of users_following.
type Follow struct {
	FollowerID string    `json:"followerId" bson:"followerid" gorm:"column:follower_id;index:idx_follow,unique"`
	CreatorID  string    `json:"creatorId" bson:"creatorid" gorm:"column:creator_id;index:idx_follow,unique"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdat" gorm:"column:created_at"`
}

func (Follow) TableName() string { return "users_following" }

type NewsletterEntry struct {
	Email     string    `json:"email" bson:"email" gorm:"column:email;uniqueIndex"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat" gorm:"column:created_at"`
}

func (NewsletterEntry) TableName() string { return "newsletter" }
