package signup

import (
	"camp-signup-system/internal/global/response"
	"camp-signup-system/internal/model"
	"camp-signup-system/tools"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const rosterSheet = "Roster"

// RosterRow 花名册的一行，按报名时间排序
type RosterRow struct {
	SignupID     uint   `excel:"Signup ID"`
	Time         string `excel:"Time"`
	CamperID     uint   `excel:"Camper ID"`
	CamperName   string `excel:"Camper"`
	CamperAge    int    `excel:"Age"`
	ActivityID   uint   `excel:"Activity ID"`
	ActivityName string `excel:"Activity"`
	Difficulty   int    `excel:"Difficulty"`
}

func rosterRows(signups []model.Signup) []RosterRow {
	rows := make([]RosterRow, 0, len(signups))
	for _, s := range signups {
		row := RosterRow{
			SignupID:   s.ID,
			Time:       fmt.Sprintf("%02d:00", s.Time),
			CamperID:   s.CamperID,
			ActivityID: s.ActivityID,
		}
		if s.Camper != nil {
			row.CamperName = s.Camper.Name
			row.CamperAge = s.Camper.Age
		}
		if s.Activity != nil {
			row.ActivityName = s.Activity.Name
			row.Difficulty = s.Activity.Difficulty
		}
		rows = append(rows, row)
	}
	return rows
}

// ExportRoster 导出全部报名为 xlsx
func ExportRoster(c *gin.Context) {
	signups, err := repo.ListSignups(c.Request.Context())
	if err != nil {
		log.Error("查询报名列表失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Error("关闭 Excel 文件失败", "error", err)
		}
	}()

	if err := tools.ExportToExcel(f, rosterSheet, rosterRows(signups)); err != nil {
		log.Error("生成花名册失败", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	name := fmt.Sprintf("roster-%s.xlsx", time.Now().Format("20060102"))
	if err := tools.SendExcel(c, f, name); err != nil {
		log.Error("写出花名册失败", "error", err)
		return
	}
	log.Info("花名册导出成功", "count", len(signups))
}
