package model

// Club maps to the clubs table. One entry in the club directory.
type Club struct {
	ClubID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"club_id"`
	Name        string `gorm:"type:varchar(150);not null"                     json:"name"`
	Advised     bool   `gorm:"not null;default:true"                          json:"advised"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	CoverImg    string `gorm:"type:varchar(300);not null;default:''"          json:"cover_img"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Club) TableName() string { return "clubs" }
