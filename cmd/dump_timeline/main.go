// 打印场景默认路径展开后的时间轴
//
// 用法：
//
//	go run ./cmd/dump_timeline <defaults.yaml> <scene> [sampleStep]
//
// 对指定场景的内置默认路径构建时间轴并逐条打印，随后按
// sampleStep（默认 25 帧）采样运动引擎，输出每个采样点的
// 位置/旋转/手势，用于调参时核对运动曲线。
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/config"
	"github.com/decker502/handmotion/pkg/systems"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "用法: dump_timeline <defaults.yaml> <scene> [sampleStep]")
		os.Exit(2)
	}
	path, scene := os.Args[1], os.Args[2]

	sampleStep := 25.0
	if len(os.Args) > 3 {
		parsed, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil || parsed <= 0 {
			fmt.Fprintf(os.Stderr, "无效的采样步长: %s\n", os.Args[3])
			os.Exit(2)
		}
		sampleStep = parsed
	}

	defaults, err := config.LoadSceneDefaults(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载失败: %v\n", err)
		os.Exit(1)
	}

	def := defaults.Lookup(scene)
	if !def.HasPath() {
		fmt.Fprintf(os.Stderr, "场景 %s 没有内置默认路径\n", scene)
		os.Exit(1)
	}

	timeline := systems.BuildTimeline(def.Waypoints)
	fmt.Printf("场景 %s 的时间轴（%d 个条目）:\n", scene, len(timeline))
	for i, entry := range timeline {
		fmt.Printf("  [%2d] 到达=%6.1f 离开=%6.1f 位置=(%.1f, %.1f) 手势=%s\n",
			i, entry.Arrive, entry.Depart,
			entry.Waypoint.X, entry.Waypoint.Y, entry.Waypoint.Gesture.Normalize())
	}

	cfg := components.DefaultPhysicsConfig()
	end := timeline[len(timeline)-1].Depart
	fmt.Printf("\n运动采样（步长 %.0f 帧）:\n", sampleStep)
	for t := 0.0; t <= end; t += sampleStep {
		state := systems.EvaluateMotion(t, def.Waypoints, 0, cfg)
		moving := " "
		if state.IsMoving {
			moving = "*"
		}
		fmt.Printf("  t=%6.1f %s 位置=(%6.1f, %6.1f) 旋转=%6.2f 缩放=%.3f 手势=%s\n",
			t, moving, state.X, state.Y, state.Rotation, state.Scale, state.Gesture)
	}
}
