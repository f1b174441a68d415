package storage

import "time"

// Attachment types accepted for messages.
const (
	AttachmentImage = "image"
	AttachmentFile  = "file"
	AttachmentGIF   = "gif"
)

// ValidAttachmentType reports whether t is one of the accepted attachment types
func ValidAttachmentType(t string) bool {
	switch t {
	case AttachmentImage, AttachmentFile, AttachmentGIF:
		return true
	}
	return false
}

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Password     string     `json:"-"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Avatar       *string    `json:"avatar"`
	Bio          *string    `json:"bio"`
	Location     *string    `json:"location"`
	Website      *string    `json:"website"`
	DateOfBirth  *string    `json:"dateOfBirth"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastActivity *time.Time `json:"lastActivity"`
}

// OnlineUser is a User annotated with its derived presence state.
type OnlineUser struct {
	User
	IsOnline bool `json:"isOnline"`
}

type Message struct {
	ID             int64      `json:"id"`
	Content        string     `json:"content"`
	Username       string     `json:"username"`
	UserID         int64      `json:"userId"`
	AttachmentURL  *string    `json:"attachmentUrl"`
	AttachmentType *string    `json:"attachmentType"`
	AttachmentName *string    `json:"attachmentName"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      *time.Time `json:"updatedAt"`
}

type Theme struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	PrimaryColor      string    `json:"primaryColor"`
	SecondaryColor    string    `json:"secondaryColor"`
	BackgroundColor   string    `json:"backgroundColor"`
	MessageBackground string    `json:"messageBackground"`
	TextColor         string    `json:"textColor"`
	AccentColor       string    `json:"accentColor"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

// SignUp holds the fields required to register a user.
type SignUp struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Bio         *string
	Location    *string
	Website     *string
	DateOfBirth *string
}

type Credentials struct {
	Email    string
	Password string
}

// Attachment is the all-or-nothing group of message attachment fields.
type Attachment struct {
	URL  string
	Type string
	Name string
}

type NewMessage struct {
	Content    string
	Username   string
	UserID     int64
	Attachment *Attachment
}

// MessagePatch carries the editable part of a message.
type MessagePatch struct {
	Content string
}

// Optional distinguishes an absent field from an explicit null.
type Optional struct {
	Set   bool
	Value *string
}

// ProfilePatch is a partial profile update. Nil names and unset
// optionals are left untouched.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	Avatar      Optional
	Bio         Optional
	Location    Optional
	Website     Optional
	DateOfBirth Optional
}

func (p ProfilePatch) apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	for _, f := range []struct {
		opt Optional
		dst **string
	}{
		{p.Avatar, &u.Avatar},
		{p.Bio, &u.Bio},
		{p.Location, &u.Location},
		{p.Website, &u.Website},
		{p.DateOfBirth, &u.DateOfBirth},
	} {
		if f.opt.Set {
			*f.dst = f.opt.Value
		}
	}
}

func (a *Attachment) fields() (url, typ, name *string) {
	if a == nil {
		return nil, nil, nil
	}
	u, t, n := a.URL, a.Type, a.Name
	return &u, &t, &n
}
