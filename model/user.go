package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/badoux/checkmail"
)

type User struct {
	Id             int64     `gorm:"column:id;primaryKey;autoIncrement;"`
	Username       string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:User_username_key;"`
	Email          string    `gorm:"column:email;type:varchar(254);not null;uniqueIndex:User_email_key;"`
	Password       string    `gorm:"column:password;type:varchar(128);not null;"`
	FirstName      string    `gorm:"column:firstName;type:varchar(150);not null;default:'';"`
	LastName       string    `gorm:"column:lastName;type:varchar(150);not null;default:'';"`
	Bio            *string   `gorm:"column:bio;type:text;"`
	ProfilePicture *string   `gorm:"column:profilePicture;type:varchar(255);"`
	IsStaff        bool      `gorm:"column:isStaff;not null;default:false;"`
	IsActive       bool      `gorm:"column:isActive;not null;default:true;"`
	CreatedAt      time.Time `gorm:"column:createdAt;autoCreateTime;index:User_createdAt_idx,sort:desc;"`
	UpdatedAt      time.Time `gorm:"column:updatedAt;autoUpdateTime;"`

	Favorites []UserFavoriteMovie `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Ratings   []MovieRating       `gorm:"foreignKey:UserId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (User) TableName() string {
	return "User"
}

//------------------------------------------
//------------------------------------------

type UserRes struct {
	Id             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Bio            *string   `json:"bio"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserDetailRes struct {
	UserRes
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserRes(user *User, profilePictureUrl *string) UserRes {
	return UserRes{
		Id:             user.Id,
		Username:       user.Username,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Bio:            user.Bio,
		ProfilePicture: profilePictureUrl,
		CreatedAt:      user.CreatedAt,
	}
}

type UserListRes struct {
	Count      int64     `json:"count"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Results    []UserRes `json:"results"`
}

type RegisterRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

type UpdateProfileRes struct {
	Message string        `json:"message"`
	User    UserDetailRes `json:"user"`
}

type ProfilePictureReq struct {
	ContentType string `json:"content_type"`
}

type ProfilePictureRes struct {
	UploadUrl string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	ExpiresIn int64  `json:"expires_in"`
}

//------------------------------------------
//------------------------------------------

const (
	minUsernameLength = 3
	maxUsernameLength = 150
	minPasswordLength = 8
)

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

type RegisterReq struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
}

// Validate checks field formats only. Uniqueness is checked against the store.
func (r *RegisterReq) Validate() map[string][]string {
	errs := map[string][]string{}
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	switch {
	case r.Username == "":
		errs["username"] = []string{"This field is required."}
	case len(r.Username) < minUsernameLength:
		errs["username"] = []string{"Username must be at least 3 characters long."}
	case len(r.Username) > maxUsernameLength:
		errs["username"] = []string{"Ensure this field has no more than 150 characters."}
	case !usernameRegex.MatchString(r.Username):
		errs["username"] = []string{"Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."}
	}

	if msg := ValidateEmailFormat(r.Email); msg != "" {
		errs["email"] = []string{msg}
	}

	if len(r.Password) < minPasswordLength {
		errs["password"] = []string{"Ensure this field has at least 8 characters."}
	} else if r.Password != r.PasswordConfirm {
		errs["password"] = []string{"Passwords do not match."}
	}
	if len(r.PasswordConfirm) < minPasswordLength {
		errs["password_confirm"] = []string{"Ensure this field has at least 8 characters."}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateEmailFormat(email string) string {
	if email == "" {
		return "This field is required."
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return "Enter a valid email address."
	}
	return ""
}

type UpdateProfileReq struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

func (r *UpdateProfileReq) Validate() map[string][]string {
	errs := map[string][]string{}
	if r.Email != nil {
		trimmed := strings.TrimSpace(*r.Email)
		r.Email = &trimmed
		if msg := ValidateEmailFormat(trimmed); msg != "" {
			errs["email"] = []string{msg}
		}
	}
	if r.FirstName != nil && len(*r.FirstName) > maxUsernameLength {
		errs["first_name"] = []string{"Ensure this field has no more than 150 characters."}
	}
	if r.LastName != nil && len(*r.LastName) > maxUsernameLength {
		errs["last_name"] = []string{"Ensure this field has no more than 150 characters."}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

//------------------------------------------
//------------------------------------------

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenRefreshReq struct {
	Refresh string `json:"refresh"`
}

type TokenPairRes struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessTokenRes struct {
	Access string `json:"access"`
}
