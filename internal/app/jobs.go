package app

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedPipelineStatsTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(cpuuse) > 0 {
		zap.L().Debug("system gauge", zap.Float64("cpu_percent", cpuuse[0]))
	}

	meminfo, err := mem.VirtualMemory()
	if err == nil {
		zap.L().Debug("system gauge", zap.Uint64("mem_used_mb", meminfo.Used/1024/1024))
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	cpuuse, err := p.CPUPercent()
	if err == nil {
		zap.L().Debug("process gauge", zap.Float64("cpu_percent", cpuuse))
	}

	meminfo, err := p.MemoryInfo()
	if err == nil {
		zap.L().Debug("process gauge", zap.Uint64("rss_mb", meminfo.RSS/1024/1024))
	}
}

// SchedPipelineStatsTask logs the memoization counters once a day so cache
// effectiveness shows up in long-running deployments.
func (a *Application) SchedPipelineStatsTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	hits, misses := a.sess.EngineStats()
	zap.L().Info("pipeline memo stats", zap.Uint64("hits", hits), zap.Uint64("misses", misses))
}
