// Package hostinfo gathers machine facts shown next to the detected
// environment. Everything here is best effort.
package hostinfo

import (
	"runtime"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/host"

	"deskenv/internal/model"
)

func Collect(logger zerolog.Logger) *model.HostInfo {
	logger = logger.With().Str("component", "hostinfo").Logger()
	info := &model.HostInfo{}

	if stat, err := host.Info(); err != nil {
		logger.Debug().Err(err).Msg("Host info unavailable")
	} else {
		info.Kernel = stat.KernelVersion
		info.Arch = stat.KernelArch
		info.Platform = stat.Platform
		info.PlatformFamily = stat.PlatformFamily
		info.PlatformVersion = stat.PlatformVersion
	}
	if info.Arch == "" {
		info.Arch = architecture()
	}

	if chassis, err := ghw.Chassis(ghw.WithDisableWarnings()); err != nil {
		logger.Debug().Err(err).Msg("Chassis info unavailable")
	} else {
		info.Chassis = known(chassis.TypeDescription)
		info.Vendor = known(chassis.Vendor)
	}

	if product, err := ghw.Product(ghw.WithDisableWarnings()); err != nil {
		logger.Debug().Err(err).Msg("Product info unavailable")
	} else {
		info.Product = known(product.Name)
		if info.Vendor == "" {
			info.Vendor = known(product.Vendor)
		}
	}

	return info
}

// known maps ghw's placeholder for unreadable DMI fields to "".
func known(value string) string {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "unknown") {
		return ""
	}
	return value
}

func architecture() string {
	arch := runtime.GOARCH
	if arch == "amd64" {
		return "x86_64"
	}
	return arch
}
