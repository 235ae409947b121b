// Package app 提供编辑器应用的核心包装器
//
// 该包是核心状态机与求值引擎的宿主：把鼠标/键盘输入转换为
// 编辑动作派发给撤销包装层，每帧在当前播放时刻采样
// EvaluateMotion / EvaluateFloat / EvaluateZoom 并绘制结果。
// 所有绘制都在这里，核心包保持纯数值。
package app

import (
	"image/color"
	"io"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/handmotion/pkg/components"
	"github.com/decker502/handmotion/pkg/config"
	"github.com/decker502/handmotion/pkg/editor"
	"github.com/decker502/handmotion/pkg/session"
	"github.com/decker502/handmotion/pkg/systems"
)

// 逻辑画布尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// waypointHitRadius 路径点的命中半径（像素）
const waypointHitRadius = 10.0

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool

	// CompositionID 要编辑的合成 ID
	CompositionID string

	// DefaultsPath 场景默认内容配置文件路径，为空则不加载
	DefaultsPath string

	// Scene 启动时选中的场景
	Scene string
}

// App 编辑器应用，实现 ebiten.Game 接口
type App struct {
	history  *editor.History
	sessions *session.SessionManager
	defaults *config.SceneDefaults
	physics  components.PhysicsConfig

	// playhead 播放头（帧），预览模式下每 tick 前进
	playhead float64

	// cameraZoom 平滑跟随的镜头缩放（渲染态，不进入核心状态）
	cameraZoom float64
}

// NewApp 创建并初始化编辑器应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	var defaults *config.SceneDefaults
	if cfg.DefaultsPath != "" {
		loaded, err := config.LoadSceneDefaults(cfg.DefaultsPath)
		if err != nil {
			return nil, err
		}
		defaults = loaded
		log.Printf("[App] 已加载场景默认内容: %s", cfg.DefaultsPath)
	}

	// gdata 打开失败时进入降级模式（仅内存会话），不阻止启动
	gdataManager, err := gdata.Open(gdata.Config{AppName: "handmotion"})
	if err != nil {
		log.Printf("[App] Warning: failed to open gdata storage: %v (session will not persist)", err)
		gdataManager = nil
	}
	sessions := session.NewSessionManager(gdataManager)

	state := sessions.Restore(cfg.CompositionID, time.Now().UnixMilli())
	history := editor.NewHistory(state)

	app := &App{
		history:    history,
		sessions:   sessions,
		defaults:   defaults,
		physics:    components.DefaultPhysicsConfig(),
		cameraZoom: 1.0,
	}

	if cfg.Scene != "" {
		app.dispatch(editor.Action{Kind: editor.ActionSelectScene, Scene: cfg.Scene})
		app.dispatch(editor.Action{
			Kind:     editor.ActionEnsureSceneLayers,
			Scene:    cfg.Scene,
			Defaults: defaults.Lookup(cfg.Scene),
		})
	}
	return app, nil
}

// dispatch 派发动作，统一补上时间戳
func (a *App) dispatch(action editor.Action) {
	if action.Time.IsZero() {
		action.Time = time.Now()
	}
	a.history.Dispatch(action)
}

// State 当前会话状态（只读视角）
func (a *App) State() *editor.State {
	return a.history.Present
}

// Update 每 tick 的输入处理与播放推进
func (a *App) Update() error {
	a.handleKeyboard()
	a.handleMouse()

	state := a.State()
	if state.PreviewMode {
		a.playhead++
		timeline := systems.BuildTimeline(state.SceneWaypoints[state.SelectedScene])
		if n := len(timeline); n > 0 && a.playhead > timeline[n-1].Depart+60 {
			a.playhead = 0
		}
	}

	// 镜头缩放向目标值平滑收敛，收敛速率沿用物理配置的平滑强度
	keyframes := systems.CollectZoomKeyframes(state.SceneLayers[state.SelectedScene])
	if zoom := systems.EvaluateZoom(a.playhead, keyframes); zoom != nil {
		a.cameraZoom += (zoom.Zoom - a.cameraZoom) * a.physics.Smoothing
	} else {
		a.cameraZoom += (1.0 - a.cameraZoom) * a.physics.Smoothing
	}
	return nil
}

// handleKeyboard 键盘快捷键
func (a *App) handleKeyboard() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		a.dispatch(editor.Action{Kind: editor.ActionUndo})
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		a.dispatch(editor.Action{Kind: editor.ActionRedo})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.dispatch(editor.Action{Kind: editor.ActionTogglePreview})
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		state := a.State()
		a.dispatch(editor.Action{
			Kind:     editor.ActionToggleTrail,
			Defaults: a.defaults.Lookup(state.SelectedScene),
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.dispatch(editor.Action{Kind: editor.ActionMarkSaved})
		if err := a.sessions.Save(a.State()); err != nil {
			log.Printf("[App] Warning: failed to persist session: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.dispatch(editor.Action{Kind: editor.ActionRevertToSaved})
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		a.cycleTool()
	}
}

// cycleTool 在工具之间循环切换
func (a *App) cycleTool() {
	var next editor.Tool
	switch a.State().ActiveTool {
	case editor.ToolSelect:
		next = editor.ToolAddWaypoint
	case editor.ToolAddWaypoint:
		next = editor.ToolZoom
	default:
		next = editor.ToolSelect
	}
	a.dispatch(editor.Action{Kind: editor.ActionSelectTool, Tool: next})
}

// handleMouse 鼠标编辑：点击添加/选中路径点，拖拽移动
func (a *App) handleMouse() {
	state := a.State()
	scene := state.SelectedScene
	if scene == "" {
		return
	}
	mouseX, mouseY := ebiten.CursorPosition()
	fx, fy := float64(mouseX), float64(mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if idx := hitWaypoint(state.SceneWaypoints[scene], fx, fy); idx >= 0 {
			a.dispatch(editor.Action{Kind: editor.ActionStartDrag, Index: idx})
		} else if state.ActiveTool == editor.ToolAddWaypoint {
			a.dispatch(editor.Action{
				Kind:     editor.ActionAddWaypoint,
				Waypoint: &components.Waypoint{X: fx, Y: fy},
			})
		} else {
			a.dispatch(editor.Action{Kind: editor.ActionSelectWaypoint, Index: -1})
		}
		return
	}

	if state.DragIndex >= 0 {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			waypoints := state.SceneWaypoints[scene]
			if state.DragIndex < len(waypoints) {
				moved := waypoints[state.DragIndex]
				moved.X = fx
				moved.Y = fy
				a.dispatch(editor.Action{
					Kind:     editor.ActionUpdateWaypoint,
					Index:    state.DragIndex,
					Waypoint: &moved,
				})
			}
		} else {
			a.dispatch(editor.Action{Kind: editor.ActionEndDrag})
		}
	}
}

// hitWaypoint 命中测试：返回离点击位置最近且在命中半径内的路径点索引
func hitWaypoint(waypoints []components.Waypoint, x, y float64) int {
	best := -1
	bestDist := waypointHitRadius
	for i, wp := range waypoints {
		dist := math.Hypot(wp.X-x, wp.Y-y)
		if dist <= bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// Draw 渲染当前帧
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 32, B: 38, A: 255})

	state := a.State()
	scene := state.SelectedScene
	waypoints := state.SceneWaypoints[scene]

	if state.ShowTrail {
		a.drawTrail(screen, waypoints)
	}
	a.drawWaypoints(screen, waypoints, state.SelectedWaypoint)
	a.drawZoomFrame(screen)
	a.drawPointer(screen, waypoints)

	mode := "编辑"
	if state.PreviewMode {
		mode = "预览"
	}
	ebitenutil.DebugPrint(screen, mode+" | 场景: "+scene)
}

// drawTrail 绘制路径轨迹叠加
func (a *App) drawTrail(screen *ebiten.Image, waypoints []components.Waypoint) {
	trailColor := color.RGBA{R: 90, G: 160, B: 255, A: 160}
	for i := 0; i+1 < len(waypoints); i++ {
		vector.StrokeLine(screen,
			float32(waypoints[i].X), float32(waypoints[i].Y),
			float32(waypoints[i+1].X), float32(waypoints[i+1].Y),
			1.5, trailColor, true)
	}
}

// drawWaypoints 绘制路径点标记，选中点高亮
func (a *App) drawWaypoints(screen *ebiten.Image, waypoints []components.Waypoint, selected int) {
	for i, wp := range waypoints {
		clr := color.RGBA{R: 200, G: 200, B: 210, A: 255}
		radius := float32(4)
		if i == selected {
			clr = color.RGBA{R: 255, G: 196, B: 0, A: 255}
			radius = 6
		}
		vector.DrawFilledCircle(screen, float32(wp.X), float32(wp.Y), radius, clr, true)
	}
}

// drawZoomFrame 绘制当前镜头焦点框
func (a *App) drawZoomFrame(screen *ebiten.Image) {
	state := a.State()
	keyframes := systems.CollectZoomKeyframes(state.SceneLayers[state.SelectedScene])
	result := systems.EvaluateZoom(a.playhead, keyframes)
	if result == nil || result.Zoom <= 1 {
		return
	}

	frameW := float32(ScreenWidth / result.Zoom)
	frameH := float32(ScreenHeight / result.Zoom)
	centerX := float32(result.FocusX * ScreenWidth)
	centerY := float32(result.FocusY * ScreenHeight)
	vector.StrokeRect(screen,
		centerX-frameW/2, centerY-frameH/2, frameW, frameH,
		2, color.RGBA{R: 120, G: 220, B: 120, A: 200}, true)
}

// drawPointer 在播放头时刻采样运动引擎并绘制指针
func (a *App) drawPointer(screen *ebiten.Image, waypoints []components.Waypoint) {
	motion := systems.EvaluateMotion(a.playhead, waypoints, 0, a.physics)
	floating := systems.EvaluateFloat(a.playhead, a.physics)

	x := float32(motion.X)
	y := float32(motion.Y + floating.OffsetY)
	radius := float32(10 * motion.Scale)

	// 投影：运动中放大偏移表现"抬起"，悬浮相位影响投影缩放
	if a.physics.ShadowEnabled {
		shadowOffsetX := float32(a.physics.ShadowOffsetX)
		shadowOffsetY := float32(a.physics.ShadowOffsetY)
		if motion.IsMoving {
			shadowOffsetX *= 1.5
			shadowOffsetY *= 1.5
		}
		shadowRadius := radius * float32(floating.ScaleFactor)
		vector.DrawFilledCircle(screen, x+shadowOffsetX, y+shadowOffsetY, shadowRadius,
			color.RGBA{A: 70}, true)
	}

	pointerColor := color.RGBA{R: 245, G: 245, B: 250, A: 255}
	if motion.Gesture == components.GesturePressed {
		pointerColor = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	}
	vector.DrawFilledCircle(screen, x, y, radius, pointerColor, true)

	// 旋转指示：从圆心画出姿态线
	angle := motion.Rotation * math.Pi / 180
	tipX := x + float32(math.Sin(angle))*radius*1.6
	tipY := y - float32(math.Cos(angle))*radius*1.6
	vector.StrokeLine(screen, x, y, tipX, tipY, 2, pointerColor, true)
}

// Layout 返回逻辑屏幕尺寸（与窗口实际尺寸无关）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
