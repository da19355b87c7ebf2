package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Calendar CalendarConfig `toml:"calendar"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig 业务配置
type BusinessConfig struct {
	ExportBaseName string `toml:"export_base_name"`
}

// CalendarConfig 节假日配置
// 内置 2025 年法定节假日；其他年份在这里按年份追加，无需改代码：
//
//	[calendar.holidays]
//	2026 = ["2026-01-01", "2026-02-17"]
type CalendarConfig struct {
	Holidays map[string][]string `toml:"holidays"`
}

// ExtraHolidayYears 解析配置中追加的节假日年份表
func (c CalendarConfig) ExtraHolidayYears() map[int][]string {
	out := make(map[int][]string, len(c.Holidays))
	for yearStr, dates := range c.Holidays {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year <= 0 {
			continue
		}
		out[year] = dates
	}
	return out
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			ExportBaseName: "打卡记录",
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下，不存在时使用默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
