package model

import (
	"camp-signup-system/internal/view"

	"gorm.io/gorm"
)

// Signup 营员与活动的关联记录，两端均为非持有的外键引用
type Signup struct {
	Model
	Time       int       `gorm:"not null" json:"time"`               // 活动开始的小时，0~23
	CamperID   uint      `gorm:"not null;index" json:"camper_id"`    // 外键，指向 campers.id
	ActivityID uint      `gorm:"not null;index" json:"activity_id"`  // 外键，指向 activities.id
	Camper     *Camper   `gorm:"foreignKey:CamperID" json:"camper,omitempty"`
	Activity   *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

func (Signup) TableName() string {
	return "signups"
}

func NewSignup(camperID, activityID uint, time int) (*Signup, error) {
	s := &Signup{CamperID: camperID, ActivityID: activityID}
	if err := s.SetTime(time); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Signup) SetTime(time int) error {
	v, err := ValidateTime(time)
	if err != nil {
		return err
	}
	s.Time = v
	return nil
}

func (s *Signup) BeforeSave(*gorm.DB) error {
	_, err := ValidateTime(s.Time)
	return err
}

func (Signup) Kind() string {
	return "signup"
}

func (s Signup) Fields() []view.Field {
	return []view.Field{
		{Key: "id", Value: s.ID},
		{Key: "time", Value: s.Time},
		{Key: "camper_id", Value: s.CamperID},
		{Key: "activity_id", Value: s.ActivityID},
	}
}

func (s Signup) Edges() []view.Edge {
	var edges []view.Edge
	if s.Camper != nil {
		edges = append(edges, view.One("camper", *s.Camper))
	}
	if s.Activity != nil {
		edges = append(edges, view.One("activity", *s.Activity))
	}
	return edges
}
