package app

import (
	"log"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/ripple/pkg/config"
	"github.com/decker502/ripple/pkg/utils"
)

// AppName gdata 数据目录名
const AppName = "ripple"

// OpenPresetStore 打开平台数据目录下的预设存储
// gdata 不可用时返回降级存储（始终给出默认配置），不会返回 nil
func OpenPresetStore() *config.PresetStore {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: AppName,
	})
	if err != nil {
		log.Printf("[App] Warning: gdata 不可用，预设将被忽略: %v", err)
		return config.NewPresetStore(nil)
	}
	return config.NewPresetStore(manager)
}
