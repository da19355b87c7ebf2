package excel

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
)

// Parser 打卡表解析器
// 约定：第1个 sheet 为概况统计（仅作为格式提示），第2个 sheet 为打卡详情；
// 只有一个 sheet 时详情与概况取同一个
type Parser struct {
	file   *excelize.File
	fileID string
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{
		fileID: uuid.New().String(),
	}
}

// LoadFile 加载Excel文件
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("Excel文件解析失败: %w", err)
	}
	p.file = file
	return nil
}

// FileID 获取文件ID
func (p *Parser) FileID() string {
	return p.fileID
}

// Sheets 获取工作表列表
func (p *Parser) Sheets() ([]model.SheetInfo, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	result := make([]model.SheetInfo, 0, len(sheets))
	for _, name := range sheets {
		rows, err := p.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, model.SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}

	return result, nil
}

// OverviewRows 概况统计 sheet 的原始行
func (p *Parser) OverviewRows() ([][]string, error) {
	return p.sheetRows(0)
}

// DetailRows 打卡详情 sheet 的原始行
func (p *Parser) DetailRows() ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	if len(sheets) > 1 {
		return p.sheetRows(1)
	}
	return p.sheetRows(0)
}

func (p *Parser) sheetRows(index int) ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := p.file.GetSheetList()
	if index < 0 || index >= len(sheets) {
		return nil, fmt.Errorf("sheet index %d out of range", index)
	}

	return p.file.GetRows(sheets[index])
}

// ExtractEvents 从打卡详情 sheet 中提取下班打卡记录
func (p *Parser) ExtractEvents() ([]model.ClockEvent, ExtractStats, error) {
	rows, err := p.DetailRows()
	if err != nil {
		return nil, ExtractStats{}, err
	}
	return ExtractClockEvents(rows)
}

// Close 关闭文件
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}
