// 校验场景默认内容配置文件
//
// 用法：
//
//	go run ./cmd/validate_defaults <file.yaml> [file2.yaml ...]
//
// 逐个加载并校验给出的 YAML 文件，输出每个场景的统计信息。
// 任一文件无效时以非零状态码退出。
package main

import (
	"fmt"
	"os"

	"github.com/decker502/handmotion/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "用法: validate_defaults <file.yaml> [file2.yaml ...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		defaults, err := config.LoadSceneDefaults(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed = true
			continue
		}

		fmt.Printf("✓ %s (合成 %s, %d 个场景)\n", path, defaults.CompositionID, len(defaults.Scenes))
		for scene, def := range defaults.Scenes {
			fmt.Printf("  - %s: %d 个路径点, %d 条音频提示, 手势 %s\n",
				scene, len(def.Waypoints), len(def.AudioCues), def.Gesture.Normalize())
		}
	}

	if failed {
		os.Exit(1)
	}
}
