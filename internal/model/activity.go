package model

import (
	"camp-signup-system/internal/view"
)

type Activity struct {
	Model
	Name       string `gorm:"type:varchar(255)" json:"name"` // 活动名称
	Difficulty int    `json:"difficulty"`                    // 活动难度
	// 删除活动时级联删除报名记录
	Signups []Signup `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`
}

func (Activity) TableName() string {
	return "activities"
}

func (Activity) Kind() string {
	return "activity"
}

func (a Activity) Fields() []view.Field {
	return []view.Field{
		{Key: "id", Value: a.ID},
		{Key: "name", Value: a.Name},
		{Key: "difficulty", Value: a.Difficulty},
	}
}

func (a Activity) Edges() []view.Edge {
	return []view.Edge{view.Many("signups", a.Signups)}
}
