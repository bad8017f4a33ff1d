package models

type User struct {
	Name           string  `json:"name" bson:"name" validate:"required"`
	Email          string  `json:"email" bson:"email" validate:"required,email"`
	Role           string  `json:"role" bson:"role" validate:"required,oneof=landlord tenant"`
	AvatarURL      *string `json:"avatar_url" bson:"avatar_url" validate:"omitempty,url"`
	Phone          *string `json:"phone" bson:"phone"`
	Bio            *string `json:"bio" bson:"bio"`
	Verified       *bool   `json:"verified" bson:"verified"`
	SupabaseUserID *string `json:"supabase_user_id" bson:"supabase_user_id"` // external auth reference
}

func (u *User) ApplyDefaults() {
	if u.Verified == nil {
		u.Verified = boolPtr(false)
	}
}
