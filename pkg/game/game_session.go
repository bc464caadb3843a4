package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

// ErrUnknownWeapon 武器ID不在目录中
var ErrUnknownWeapon = errors.New("unknown weapon")

// GameSession 训练会话控制器
//
// 职责：
//   - 持有当前会话快照，所有事件（点击、开局、重置、提示、计时）串行处理
//   - 管理计时器订阅，只在进行中阶段存在
//   - 会话完成时生成成绩记录并写入排行榜
//
// 架构说明：
//   - 状态转换由 SessionState 的纯函数完成，控制器只负责替换快照和副作用
//   - 计时回调携带会话ID，过期回调（旧会话、已停止）直接丢弃
type GameSession struct {
	mu sync.Mutex

	catalog *config.WeaponCatalog
	records *RecordStore

	clock        Clock
	tickInterval time.Duration
	rng          Sampler
	now          func() time.Time

	state     SessionState
	stopTimer func()

	// 排行榜缓存，保存后失效，下次读取时从存储重新加载
	leaderboard []GameRecord
	cached      bool
}

// SessionOption 会话控制器选项
type SessionOption func(*GameSession)

// WithClock 指定计时调度器（测试中使用 ManualClock）
func WithClock(clock Clock) SessionOption {
	return func(gs *GameSession) { gs.clock = clock }
}

// WithTickInterval 指定计时间隔，默认 1 秒
func WithTickInterval(interval time.Duration) SessionOption {
	return func(gs *GameSession) {
		if interval > 0 {
			gs.tickInterval = interval
		}
	}
}

// WithRandom 指定拆卸飞出方向的随机数来源
func WithRandom(rng Sampler) SessionOption {
	return func(gs *GameSession) { gs.rng = rng }
}

// WithNow 指定记录日期的时间来源
func WithNow(now func() time.Time) SessionOption {
	return func(gs *GameSession) { gs.now = now }
}

// NewGameSession 创建会话控制器，初始处于空闲阶段
//
// 参数：
//   - catalog: 已校验的武器目录
//   - records: 排行榜存储，可为 nil（不保存成绩）
//   - opts: 可选配置
func NewGameSession(catalog *config.WeaponCatalog, records *RecordStore, opts ...SessionOption) *GameSession {
	gs := &GameSession{
		catalog:      catalog,
		records:      records,
		clock:        RealClock{},
		tickInterval: time.Second,
		rng:          rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
		now:          time.Now,
		state:        IdleState(),
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// Catalog 返回武器目录
func (gs *GameSession) Catalog() *config.WeaponCatalog {
	return gs.catalog
}

// StartGame 开始一局新训练，替换当前会话（无论处于哪个阶段）
//
// 返回：
//   - error: 武器ID不存在时返回 ErrUnknownWeapon，当前会话不受影响
func (gs *GameSession) StartGame(mode types.Mode, weaponID string) error {
	weapon, ok := gs.catalog.Get(weaponID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWeapon, weaponID)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.startLocked(mode, weapon)
	return nil
}

// SwitchMode 以相反模式重新开始当前武器
// 空闲阶段没有武器可用，返回错误
func (gs *GameSession) SwitchMode() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.state.Phase == types.PhaseIdle || gs.state.Weapon == nil {
		return fmt.Errorf("no active session to switch mode")
	}
	gs.startLocked(gs.state.Mode.Opposite(), gs.state.Weapon)
	return nil
}

func (gs *GameSession) startLocked(mode types.Mode, weapon *config.WeaponConfig) {
	gs.cancelTimerLocked()

	id := uuid.NewString()
	gs.state = NewSessionState(id, mode, weapon)
	gs.stopTimer = gs.clock.Every(gs.tickInterval, func() { gs.tick(id) })

	log.Printf("[GameSession] Started %s: weapon=%s parts=%d session=%s",
		mode, weapon.ID, len(weapon.Parts), id)
}

// HandlePartClick 处理零件点击
// 非法点击（顺序错误、状态不匹配、会话未进行）静默忽略
func (gs *GameSession) HandlePartClick(partID string) ClickOutcome {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	next, outcome := gs.state.ClickPart(partID, gs.rng)
	if outcome == ClickIgnored {
		return outcome
	}
	gs.state = next

	if outcome == ClickCompleted {
		gs.cancelTimerLocked()
		log.Printf("[GameSession] Completed %s: weapon=%s time=%ds score=%d",
			next.Mode, next.Weapon.ID, next.Timer, next.Score)
		gs.saveRecordLocked(next)
	}
	return outcome
}

// ToggleHint 切换提示显示
func (gs *GameSession) ToggleHint() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.state = gs.state.ToggleHint()
}

// ResetGame 返回空闲阶段，停止计时器，不修改排行榜
func (gs *GameSession) ResetGame() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.cancelTimerLocked()
	gs.state = IdleState()
}

// Close 停止计时器，释放资源
func (gs *GameSession) Close() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.cancelTimerLocked()
}

// State 返回当前快照的副本
func (gs *GameSession) State() SessionState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.state.Clone()
}

// Records 返回当前排行榜的副本
func (gs *GameSession) Records() []GameRecord {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.records == nil {
		return []GameRecord{}
	}
	if !gs.cached {
		gs.leaderboard = gs.records.Load()
		gs.cached = true
	}
	out := make([]GameRecord, len(gs.leaderboard))
	copy(out, gs.leaderboard)
	return out
}

// tick 计时回调
// 会话ID不匹配（旧会话的回调）或不在进行中阶段时丢弃
func (gs *GameSession) tick(sessionID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.state.ID != sessionID {
		return
	}
	gs.state = gs.state.Tick()
}

func (gs *GameSession) cancelTimerLocked() {
	if gs.stopTimer != nil {
		gs.stopTimer()
		gs.stopTimer = nil
	}
}

func (gs *GameSession) saveRecordLocked(s SessionState) {
	if gs.records == nil {
		return
	}

	record := GameRecord{
		Weapon: s.Weapon.Name,
		Mode:   s.Mode.Label(),
		Time:   s.Timer,
		Score:  s.RecordScore(),
		Date:   gs.now().Format(RecordDateLayout),
	}
	gs.cached = false
	if _, err := gs.records.Add(record); err != nil {
		log.Printf("[GameSession] Warning: failed to save record: %v", err)
	}
}
