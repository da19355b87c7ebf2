package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/config"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/model"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/excel"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/overtime"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/subsidy"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/service/workday"
)

// Handlers API处理器
type Handlers struct {
	cfg *config.AppConfig

	// 上传文件缓存：fileId -> 提取结果
	files   map[string]*parsedFile
	filesMu sync.RWMutex

	// 导出文件缓存：exportId -> 磁盘路径
	exports   map[string]string
	exportsMu sync.RWMutex
}

type parsedFile struct {
	FileName string
	Sheets   []model.SheetInfo
	Events   []model.ClockEvent
	Stats    excel.ExtractStats
}

// NewHandlers 创建处理器
func NewHandlers(cfg *config.AppConfig) *Handlers {
	return &Handlers{
		cfg:     cfg,
		files:   make(map[string]*parsedFile),
		exports: make(map[string]string),
	}
}

// Response 通用响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// RegisterRoutes 注册路由
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/files", h.UploadFile)
	api.GET("/files/:fileId/records", h.GetRecords)
	api.POST("/files/:fileId/compute", h.Compute)
	api.POST("/files/:fileId/export", h.ExportFile)
	api.GET("/exports/:exportId", h.DownloadExport)
	api.GET("/subsidy/tiers", h.GetSubsidyTiers)
}

// UploadFile 上传打卡表并提取下班记录
func (h *Handlers) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, 1001, "请选择要上传的文件")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		errorResponse(c, 1002, "文件读取失败: "+err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		errorResponse(c, 1002, "文件读取失败: "+err.Error())
		return
	}

	parser := excel.NewParser()
	if err := parser.LoadFile(bytes.NewReader(data)); err != nil {
		errorResponse(c, 2001, err.Error())
		return
	}
	defer parser.Close()

	sheets, err := parser.Sheets()
	if err != nil {
		errorResponse(c, 2001, err.Error())
		return
	}

	events, stats, err := parser.ExtractEvents()
	if err != nil {
		errorResponse(c, 2002, "Excel格式不正确: "+err.Error())
		return
	}

	log.Printf("解析完成 %s: 提取 %d 条下班记录, 跳过 %d 条",
		fileHeader.Filename, stats.Processed, stats.Skipped)

	fileID := parser.FileID()
	h.filesMu.Lock()
	h.files[fileID] = &parsedFile{
		FileName: fileHeader.Filename,
		Sheets:   sheets,
		Events:   events,
		Stats:    stats,
	}
	h.filesMu.Unlock()

	success(c, gin.H{
		"fileId":      fileID,
		"fileName":    fileHeader.Filename,
		"sheets":      sheets,
		"layout":      stats.Layout,
		"recordCount": len(events),
		"skipped":     stats.Skipped,
		"months":      overtime.DetectMonths(events),
	})
}

// GetRecords 获取提取出的下班打卡记录
func (h *Handlers) GetRecords(c *gin.Context) {
	pf, ok := h.lookupFile(c.Param("fileId"))
	if !ok {
		errorResponse(c, 2003, "文件不存在或已过期")
		return
	}
	success(c, pf.Events)
}

type computeRequest struct {
	Year   int               `json:"year" binding:"required"`
	Month  int               `json:"month" binding:"required"`
	Config *model.UserConfig `json:"config"`
}

// Compute 按月计算加班与补贴
func (h *Handlers) Compute(c *gin.Context) {
	pf, ok := h.lookupFile(c.Param("fileId"))
	if !ok {
		errorResponse(c, 2003, "文件不存在或已过期")
		return
	}

	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		errorResponse(c, 1001, "月份必须在 1-12 之间")
		return
	}

	records, mergeStats := overtime.ProcessClockRecords(pf.Events, req.Config)
	totalHours := overtime.TotalOvertime(records, req.Year, req.Month)
	result := subsidy.Calculate(totalHours)

	log.Printf("%d年%d月: 归并 %d 天, 总加班 %.1f 小时, 补贴 %.0f 元",
		req.Year, req.Month, mergeStats.Processed, totalHours, result.SubsidyAmount)

	success(c, gin.H{
		"records":           overtime.SortedRecords(records),
		"totalHours":        totalHours,
		"subsidy":           result,
		"workedDays":        workday.WorkedDays(pf.Events, req.Year, req.Month),
		"totalWorkdays":     workday.TotalWorkdaysInMonth(req.Year, req.Month, req.Config),
		"remainingWorkdays": workday.RemainingWorkdays(req.Year, req.Month, req.Config),
	})
}

// GetSubsidyTiers 获取补贴档位表
func (h *Handlers) GetSubsidyTiers(c *gin.Context) {
	success(c, subsidy.Tiers())
}

// ExportFile 导出下班打卡记录为Excel
func (h *Handlers) ExportFile(c *gin.Context) {
	pf, ok := h.lookupFile(c.Param("fileId"))
	if !ok {
		errorResponse(c, 2003, "文件不存在或已过期")
		return
	}

	now := time.Now()
	wb, err := excel.NewExporter().BuildWorkbook(pf.Events, now)
	if err != nil {
		errorResponse(c, 3001, "导出失败: "+err.Error())
		return
	}
	defer wb.Close()

	dataDir, err := config.EnsureDataDir(h.cfg)
	if err != nil {
		errorResponse(c, 3002, "创建导出目录失败: "+err.Error())
		return
	}

	filename := excel.ExportFilename(h.cfg.Business.ExportBaseName, now)
	path := filepath.Join(dataDir, "exports", filename)
	if err := wb.SaveAs(path); err != nil {
		errorResponse(c, 3001, "导出失败: "+err.Error())
		return
	}

	exportID := uuid.New().String()
	h.exportsMu.Lock()
	h.exports[exportID] = path
	h.exportsMu.Unlock()

	log.Printf("导出完成: %s", filename)

	success(c, gin.H{
		"exportId": exportID,
		"filename": filename,
	})
}

// DownloadExport 下载导出文件
func (h *Handlers) DownloadExport(c *gin.Context) {
	exportID := c.Param("exportId")

	h.exportsMu.RLock()
	path, ok := h.exports[exportID]
	h.exportsMu.RUnlock()
	if !ok {
		errorResponse(c, 3003, "导出文件不存在")
		return
	}

	if _, err := os.Stat(path); err != nil {
		errorResponse(c, 3003, "导出文件不存在")
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", filepath.Base(path)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(path)
}

func (h *Handlers) lookupFile(fileID string) (*parsedFile, bool) {
	h.filesMu.RLock()
	defer h.filesMu.RUnlock()
	pf, ok := h.files[fileID]
	return pf, ok
}
