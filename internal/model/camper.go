package model

import (
	"camp-signup-system/internal/view"

	"gorm.io/gorm"
)

type Camper struct {
	Model
	Name string `gorm:"type:varchar(100);not null" json:"name"` // 营员姓名
	Age  int    `gorm:"not null" json:"age"`                    // 年龄，8~18
	// Signups 仅作为 Preload 结果的承载，不维护反向引用
	Signups []Signup `gorm:"foreignKey:CamperID" json:"signups,omitempty"`
}

func (Camper) TableName() string {
	return "campers"
}

// NewCamper 构造并校验营员
func NewCamper(name string, age int) (*Camper, error) {
	c := &Camper{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetAge(age); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Camper) SetName(name string) error {
	v, err := ValidateName(name)
	if err != nil {
		return err
	}
	c.Name = v
	return nil
}

func (c *Camper) SetAge(age int) error {
	v, err := ValidateAge(age)
	if err != nil {
		return err
	}
	c.Age = v
	return nil
}

// BeforeSave 兜底校验，任何写入路径都不能落库非法值
func (c *Camper) BeforeSave(*gorm.DB) error {
	if _, err := ValidateName(c.Name); err != nil {
		return err
	}
	_, err := ValidateAge(c.Age)
	return err
}

func (Camper) Kind() string {
	return "camper"
}

func (c Camper) Fields() []view.Field {
	return []view.Field{
		{Key: "id", Value: c.ID},
		{Key: "name", Value: c.Name},
		{Key: "age", Value: c.Age},
	}
}

func (c Camper) Edges() []view.Edge {
	return []view.Edge{view.Many("signups", c.Signups)}
}
