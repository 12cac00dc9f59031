package entity

// Role identifies the kind of account
type Role string

const (
	RoleClient  Role = "CLIENT"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
)

// CompanyStatus is the moderation state of a company account
type CompanyStatus string

const (
	CompanyPending  CompanyStatus = "PENDING"
	CompanyApproved CompanyStatus = "APPROVED"
	CompanyRejected CompanyStatus = "REJECTED"
)

// Valid reports whether s is one of the known moderation states
func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyPending, CompanyApproved, CompanyRejected:
		return true
	}
	return false
}

// AdminID is the id of the single shared administrator record
const AdminID = "admin"

// Account represents a traveler, a transport company or the administrator.
// Company-only fields are empty for the other roles.
type Account struct {
	ID           string `json:"id" bson:"id"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"passwordHash,omitempty" bson:"passwordHash,omitempty"`
	Name         string `json:"name" bson:"name"`
	Role         Role   `json:"role" bson:"role"`
	AvatarURL    string `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	NPI          string `json:"npi,omitempty" bson:"npi,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	WhatsApp     string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Description  string `json:"description,omitempty" bson:"description,omitempty"`

	// Company
	CompanyName  string        `json:"companyName,omitempty" bson:"companyName,omitempty"`
	BannerURL    string        `json:"bannerUrl,omitempty" bson:"bannerUrl,omitempty"`
	IFU          string        `json:"ifu,omitempty" bson:"ifu,omitempty"`
	RCCM         string        `json:"rccm,omitempty" bson:"rccm,omitempty"`
	AnattURL     string        `json:"anattUrl,omitempty" bson:"anattUrl,omitempty"`
	OtherDocsURL string        `json:"otherDocsUrl,omitempty" bson:"otherDocsUrl,omitempty"`
	Status       CompanyStatus `json:"status,omitempty" bson:"status,omitempty"`
}

// IsCompany reports whether the account belongs to a transport company
func (a *Account) IsCompany() bool {
	return a.Role == RoleCompany
}

// IsApproved reports whether a company account passed moderation
func (a *Account) IsApproved() bool {
	return a.IsCompany() && a.Status == CompanyApproved
}
