package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/0jiuxian0/clock-in-out-statistics/internal/calendar"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/config"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/server"
	"github.com/0jiuxian0/clock-in-out-statistics/internal/util"
)

var (
	port    = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode = flag.Bool("dev", false, "开发模式")
	dataDir = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  打卡记录统计 - 加班补贴计算工具")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 注册配置中追加的节假日年份
	for year, dates := range cfg.Calendar.ExtraHolidayYears() {
		calendar.Register(year, dates)
	}

	// 确保数据目录存在
	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n服务已停止")
}
