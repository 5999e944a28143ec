package model

// Activity maps to the activities table. Events and room reservations share this
// table; IsReservation marks the rows that occupy a physical room and
// therefore participate in conflict checking.
//
// StartMs/EndMs are absolute instants in UTC epoch milliseconds. When NoEnd
// is set the end is treated as equal to the start for display purposes.
type Activity struct {
	ActivityID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"activity_id"`
	Name             string  `gorm:"type:varchar(200);not null"                     json:"name"`
	ClubName         string  `gorm:"type:varchar(150);not null;default:''"          json:"club_name"`
	Description      string  `gorm:"type:text;not null;default:''"                  json:"description"`
	StartMs          int64   `gorm:"not null"                                       json:"start_ms"`
	EndMs            int64   `gorm:"not null"                                       json:"end_ms"`
	NoEnd            bool    `gorm:"not null;default:false"                         json:"no_end"`
	AllDay           bool    `gorm:"not null;default:false"                         json:"all_day"`
	Location         string  `gorm:"type:varchar(80);not null;default:'none'"       json:"location"`
	IsReservation    bool    `gorm:"not null;default:false"                         json:"is_reservation"`
	IsPublic         bool    `gorm:"not null;default:true"                          json:"is_public"`
	RepeatingGroupID *string `gorm:"type:uuid"                                      json:"repeating_group_id,omitempty"`
	RepeatUntilMs    *int64  `gorm:""                                               json:"repeat_until_ms,omitempty"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Activity) TableName() string { return "activities" }

// DisplayEndMs returns the end instant used for display: activities flagged
// NoEnd render as if they ended the moment they start.
func (a *Activity) DisplayEndMs() int64 {
	if a.NoEnd {
		return a.StartMs
	}
	return a.EndMs
}
