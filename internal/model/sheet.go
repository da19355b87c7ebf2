package model

// LayoutType 打卡表格式类型
type LayoutType string

const (
	// LayoutSmartSheet 格式1：智能表格导出格式，首行即表头
	LayoutSmartSheet LayoutType = "smart_sheet"
	// LayoutRawExport 格式2：打卡系统源文件格式，带"概况统计/打卡详情"标题区
	LayoutRawExport LayoutType = "raw_export"
)

// LayoutInfo 格式探测结果
type LayoutInfo struct {
	Layout       LayoutType `json:"layout"`
	HeaderRow    int        `json:"headerRow"`    // 表头行下标
	DataStartRow int        `json:"dataStartRow"` // 数据起始行下标
}

// SheetInfo 工作表信息
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}
