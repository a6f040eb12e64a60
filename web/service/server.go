package service

import (
	"runtime"
	"time"

	"github.com/affaneka/portal/logger"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type ServerService struct{}

type usage struct {
	Current uint64 `json:"current"`
	Total   uint64 `json:"total"`
}

type Status struct {
	T          time.Time `json:"t"`
	Cpu        float64   `json:"cpu"`
	CpuCores   int       `json:"cpuCores"`
	LogicalPro int       `json:"logicalPro"`
	Uptime     uint64    `json:"uptime"`
	Mem        usage     `json:"mem"`
	Disk       usage     `json:"disk"`
}

// GetStatus samples host health. Individual probe failures are logged and
// leave their field at zero; the endpoint always answers.
func (s *ServerService) GetStatus() *Status {
	status := &Status{T: time.Now()}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	status.CpuCores, err = cpu.Counts(false)
	if err != nil {
		logger.Warning("get cpu cores count failed:", err)
	}

	status.LogicalPro = runtime.NumCPU()

	upTime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = upTime
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	diskInfo, err := disk.Usage("/")
	if err != nil {
		logger.Warning("get disk usage failed:", err)
	} else {
		status.Disk.Current = diskInfo.Used
		status.Disk.Total = diskInfo.Total
	}

	return status
}
