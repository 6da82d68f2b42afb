package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

type column struct {
	index  []int
	header string
	width  int
}

// ExportToExcel 把结构体切片写入 sheet，表头取 excel 标签（"-" 跳过，空则用字段名）
// 切片为空时只写表头
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T 不是切片", data)
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T 不是结构体切片", data)
	}

	if sheet == "" {
		sheet = defaultSheet
	}
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if sheet != defaultSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}

	cols := collectColumns(elemType, nil)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// 写表头
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	// 写数据行，跳过 nil 指针
	row := 2
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr {
			if elem.IsNil() {
				continue
			}
			elem = elem.Elem()
		}

		for colIndex := range cols {
			value := cellValue(elem.FieldByIndex(cols[colIndex].index))
			if w := len(fmt.Sprint(value)); w > cols[colIndex].width {
				cols[colIndex].width = w
			}
			cell, err := excelize.CoordinatesToCellName(colIndex+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		row++
	}

	for i, col := range cols {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(col.width+2)); err != nil {
			return err
		}
	}
	return nil
}

// collectColumns 展开匿名嵌入的结构体字段
func collectColumns(t reflect.Type, parent []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int(nil), parent...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			cols = append(cols, collectColumns(sf.Type, idx)...)
			continue
		}
		if sf.PkgPath != "" {
			continue
		}

		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		cols = append(cols, column{index: idx, header: tag, width: len(tag)})
	}
	return cols
}

func cellValue(fv reflect.Value) any {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			return ""
		}
		return fv.Elem().Interface()
	}
	return fv.Interface()
}
