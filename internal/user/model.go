// File: internal/user/model.go
package user

import (
	"cadastro_backend/internal/common"
	"cadastro_backend/internal/file"

	"github.com/google/uuid"
)

// User represents one account. JSON keys keep the legacy wire vocabulary
// (cpf, cargo, data_nacimento, address parts in Portuguese) so existing
// clients keep working; Go identifiers are English.
type User struct {
	common.BaseModel
	Name         string `gorm:"type:varchar(255);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Provider     bool   `gorm:"not null;default:false"`

	TaxID     *string `gorm:"column:cpf;type:varchar(20)"`
	BirthDate *string `gorm:"column:birth_date;type:varchar(30)"`
	Position  *string `gorm:"column:position;type:varchar(100)"`

	Address    *string `gorm:"column:address;type:varchar(255)"`
	ZipCode    *string `gorm:"column:zip_code;type:varchar(10)"`
	Street     *string `gorm:"column:street;type:varchar(255)"`
	Complement *string `gorm:"column:complement;type:varchar(255)"`
	Number     *string `gorm:"column:number;type:varchar(20)"`
	District   *string `gorm:"column:district;type:varchar(100)"`
	City       *string `gorm:"column:city;type:varchar(100)"`
	State      *string `gorm:"column:state;type:varchar(2)"`

	AvatarID *uuid.UUID `gorm:"type:uuid"`
	Avatar   *file.File `gorm:"foreignKey:AvatarID"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// --- DTOs for API requests/responses ---

// CreateUserRequest defines the body accepted by account creation.
type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	TaxID     *string `json:"cpf"`
	BirthDate *string `json:"data_nacimento"`
	Position  *string `json:"cargo"`
}

// UpdateUserRequest defines the partial-update body. Every field is optional;
// absent fields leave the stored value unchanged. The password-change triple
// carries conditional rules, checked by Validate.
type UpdateUserRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	OldPassword     *string `json:"oldPassword"`
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`

	TaxID     *string `json:"cpf"`
	BirthDate *string `json:"data_nacimento"`
	Position  *string `json:"cargo"`

	Address    *string `json:"endereco"`
	ZipCode    *string `json:"cep"`
	Street     *string `json:"logradouro"`
	Complement *string `json:"complemento"`
	Number     *string `json:"numero"`
	District   *string `json:"bairro"`
	City       *string `json:"cidade"`
	State      *string `json:"uf"`

	AvatarID *uuid.UUID `json:"avatar_id"`
}

// CreateResponse echoes the created account. The password never appears here
// or in any other response, under any circumstances.
type CreateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Provider  bool      `json:"provider"`
	TaxID     *string   `json:"cpf"`
	Position  *string   `json:"cargo"`
	BirthDate *string   `json:"data_nacimento"`
}

// UpdateResponse echoes the updated account together with its avatar
// reference and address parts.
type UpdateResponse struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Avatar     *file.AvatarResponse `json:"avatar"`
	Address    *string              `json:"endereco"`
	Position   *string              `json:"cargo"`
	BirthDate  *string              `json:"data_nacimento"`
	TaxID      *string              `json:"cpf"`
	ZipCode    *string              `json:"cep"`
	Street     *string              `json:"logradouro"`
	Complement *string              `json:"complemento"`
	Number     *string              `json:"numero"`
	District   *string              `json:"bairro"`
	City       *string              `json:"cidade"`
	State      *string              `json:"uf"`
}

// ToCreateResponse converts a User model to the creation payload.
func ToCreateResponse(u *User) CreateResponse {
	return CreateResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Provider:  u.Provider,
		TaxID:     u.TaxID,
		Position:  u.Position,
		BirthDate: u.BirthDate,
	}
}

// ToUpdateResponse converts a User model (loaded with its avatar) to the
// update payload. Only id, path and url of the avatar file are exposed.
func ToUpdateResponse(u *User, baseURL string) UpdateResponse {
	var avatar *file.AvatarResponse
	if u.Avatar != nil {
		avatar = file.ToAvatarResponse(u.Avatar, baseURL)
	}
	return UpdateResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Avatar:     avatar,
		Address:    u.Address,
		Position:   u.Position,
		BirthDate:  u.BirthDate,
		TaxID:      u.TaxID,
		ZipCode:    u.ZipCode,
		Street:     u.Street,
		Complement: u.Complement,
		Number:     u.Number,
		District:   u.District,
		City:       u.City,
		State:      u.State,
	}
}
