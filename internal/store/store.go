// Package store 实现营员、活动、报名的持久化操作
//
// 每个写操作都在单个事务中完成；外键存在性在事务内检查。
// 父实体上的 Signups 只在调用方需要时通过 Preload 查询填充。
package store

import (
	"camp-signup-system/internal/global/sentry/tracing"
	"camp-signup-system/internal/model"
	"context"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound 指定 id 的记录不存在
var ErrNotFound = errors.New("record not found")

// ReferenceError 创建报名时引用的营员或活动不存在
type ReferenceError struct {
	Entity string
	ID     uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrNotFound
}

// CamperPatch 营员的部分更新，nil 字段保持不变
type CamperPatch struct {
	Name *string
	Age  *int
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return pkgerrors.WithStack(err)
}

func (s *Store) CreateCamper(ctx context.Context, name string, age int) (*model.Camper, error) {
	camper, err := model.NewCamper(name, age)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(camper).Error; err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return camper, nil
}

// UpdateCamper 在事务内读取、校验并保存，任一字段非法时不写入
func (s *Store) UpdateCamper(ctx context.Context, id uint, patch CamperPatch) (*model.Camper, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camper model.Camper
		if err := tx.First(&camper, id).Error; err != nil {
			return notFound(err)
		}
		if patch.Name != nil {
			if err := camper.SetName(*patch.Name); err != nil {
				return err
			}
		}
		if patch.Age != nil {
			if err := camper.SetAge(*patch.Age); err != nil {
				return err
			}
		}
		return pkgerrors.WithStack(tx.Omit(clause.Associations).Save(&camper).Error)
	})
	if err != nil {
		return nil, err
	}
	return s.GetCamper(ctx, id)
}

// GetCamper 返回营员及其报名，每条报名带上活动
func (s *Store) GetCamper(ctx context.Context, id uint) (*model.Camper, error) {
	var camper model.Camper
	err := s.db.WithContext(ctx).
		Preload("Signups", orderByID).
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &camper, nil
}

func (s *Store) ListCampers(ctx context.Context) ([]model.Camper, error) {
	var campers []model.Camper
	if err := s.db.WithContext(ctx).Order("id").Find(&campers).Error; err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return campers, nil
}

func (s *Store) CreateActivity(ctx context.Context, name string, difficulty int) (*model.Activity, error) {
	activity := &model.Activity{Name: name, Difficulty: difficulty}
	if err := s.db.WithContext(ctx).Create(activity).Error; err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return activity, nil
}

func (s *Store) GetActivity(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	err := s.db.WithContext(ctx).
		Preload("Signups", orderByID).
		Preload("Signups.Camper").
		First(&activity, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &activity, nil
}

// ListActivities 返回全部活动，每个活动带上报名及报名的营员
func (s *Store) ListActivities(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := s.db.WithContext(ctx).
		Preload("Signups", orderByID).
		Preload("Signups.Camper").
		Order("id").
		Find(&activities).Error
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return activities, nil
}

// DeleteActivity 先删除该活动的全部报名再删除活动本身，同一事务
func (s *Store) DeleteActivity(ctx context.Context, id uint) error {
	ctx, finish := tracing.StartSpan(ctx, "store.delete_activity", "activities")
	defer finish()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.First(&activity, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("activity_id = ?", activity.ID).Delete(&model.Signup{}).Error; err != nil {
			return pkgerrors.WithStack(err)
		}
		return pkgerrors.WithStack(tx.Delete(&activity).Error)
	})
}

// CreateSignup 校验时间并确认营员和活动存在后写入，失败时不落任何记录
func (s *Store) CreateSignup(ctx context.Context, camperID, activityID uint, time int) (*model.Signup, error) {
	signup, err := model.NewSignup(camperID, activityID, time)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camper model.Camper
		if err := tx.First(&camper, camperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "camper", ID: camperID}
			}
			return pkgerrors.WithStack(err)
		}
		var activity model.Activity
		if err := tx.First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ReferenceError{Entity: "activity", ID: activityID}
			}
			return pkgerrors.WithStack(err)
		}
		if err := tx.Omit(clause.Associations).Create(signup).Error; err != nil {
			return pkgerrors.WithStack(err)
		}
		signup.Camper = &camper
		signup.Activity = &activity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signup, nil
}

// GetSignup 返回报名及其营员和活动
func (s *Store) GetSignup(ctx context.Context, id uint) (*model.Signup, error) {
	var signup model.Signup
	err := s.db.WithContext(ctx).Preload("Camper").Preload("Activity").First(&signup, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &signup, nil
}

func (s *Store) ListSignups(ctx context.Context) ([]model.Signup, error) {
	var signups []model.Signup
	err := s.db.WithContext(ctx).
		Preload("Camper").
		Preload("Activity").
		Order("time").Order("id").
		Find(&signups).Error
	if err != nil {
		return nil, pkgerrors.WithStack(err)
	}
	return signups, nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
