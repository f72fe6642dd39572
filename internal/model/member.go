package model

import "strings"

// Member is a registry record.
// IDs are assigned by the registry (last ID + 1), never by the database.
type Member struct {
	ID int `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`

	Name        string `gorm:"column:name;type:VARCHAR2(255);not null" json:"name"`               // 이름
	Address     string `gorm:"column:address;type:VARCHAR2(255);not null" json:"address"`         // 주소
	PhoneNumber string `gorm:"column:phone_number;type:VARCHAR2(20);not null" json:"phoneNumber"` // 핸드폰 번호
	IsDeleted   bool   `gorm:"column:is_deleted;not null;default:false" json:"-"`                 // soft delete
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates an active Member with trimmed fields
func NewMember(id int, name, address, phoneNumber string) *Member {
	return &Member{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Address:     strings.TrimSpace(address),
		PhoneNumber: strings.TrimSpace(phoneNumber),
	}
}

// IsActive reports whether the member has not been soft-deleted
func (m *Member) IsActive() bool {
	return !m.IsDeleted
}

// Overwrite replaces the mutable fields, trimming each value
func (m *Member) Overwrite(name, address, phoneNumber string) {
	m.Name = strings.TrimSpace(name)
	m.Address = strings.TrimSpace(address)
	m.PhoneNumber = strings.TrimSpace(phoneNumber)
}

// Delete flags the member as deleted. There is no way back.
func (m *Member) Delete() {
	m.IsDeleted = true
}
