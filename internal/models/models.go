package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"passwordHash" db:"password_hash"`
	RefreshToken           string    `json:"refreshToken" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime" db:"refresh_token_expiry_time"`
}

// Reply живёт только внутри родительского поста, собственного ID у него нет
type Reply struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Time    string `json:"time"`
}

type Post struct {
	PostID   int64     `json:"id" db:"post_id"`
	Name     string    `json:"name" db:"name"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	Category string    `json:"category" db:"category"`
	Time     string    `json:"time" db:"time"`
	Replies  ReplyList `json:"replies" db:"replies"`
}

// Quote - идентификатор выводится из содержимого, см. service.QuoteID
type Quote struct {
	QuoteID string `json:"quoteId" db:"quote_id"`
	Author  string `json:"author" db:"author"`
	Text    string `json:"text" db:"text"`
}

// Favorites - одна запись на пользователя, создаётся лениво при первом избранном
type Favorites struct {
	UserID   string    `json:"userId" db:"user_id"`
	QuoteIDs StringSet `json:"quoteIds" db:"quote_ids"`
}

type Resource struct {
	ResourceID  string    `json:"resourceId" db:"resource_id"`
	Name        string    `json:"name" db:"name"`
	ObjectName  string    `json:"objectName" db:"object_name"`
	ContentType string    `json:"contentType" db:"content_type"`
	Size        int64     `json:"size" db:"size"`
	UploadedAt  time.Time `json:"uploadedAt" db:"uploaded_at"`
}

type Video struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	VideoID   string `json:"videoId"`
	Thumbnail string `json:"thumbnail"`
}

type PortalStats struct {
	Posts      int `json:"posts"`
	Users      int `json:"users"`
	Quotes     int `json:"quotes"`
	Categories int `json:"categories"`
}
