// verify_drill 无窗口验证程序
//
// 对目录中的每把武器依次进行拆卸和组装训练：
// 先点击一次顺序错误的零件（应被忽略），再按正确顺序点击全部零件，
// 最后打印排行榜。任何一步不符合预期时以非零状态码退出。
//
// 用法：
//
//	go run ./cmd/verify_drill
//	go run ./cmd/verify_drill -weapons data/weapons.yaml -sqlite /tmp/drill.db
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/config"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/game"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/storage"
	"github.com/pr-poehali-dev/disassembly-shooter-vr/pkg/types"
)

var (
	weaponsFile = flag.String("weapons", "data/weapons.yaml", "武器目录文件路径")
	sqlitePath  = flag.String("sqlite", "", "使用 SQLite 存储排行榜（为空时使用内存存储）")
	ticks       = flag.Int("ticks", 3, "每局模拟经过的秒数")
	verbose     = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	catalog, err := config.LoadWeaponCatalog(*weaponsFile)
	if err != nil {
		fmt.Printf("FAIL: %s - %v\n", *weaponsFile, err)
		os.Exit(1)
	}

	var kv game.KeyValueStore = storage.NewMemoryStore()
	if *sqlitePath != "" {
		s, err := storage.OpenSQLiteStore(*sqlitePath)
		if err != nil {
			fmt.Printf("FAIL: open sqlite %s - %v\n", *sqlitePath, err)
			os.Exit(1)
		}
		defer s.Close()
		kv = s
	}

	clock := game.NewManualClock()
	session := game.NewGameSession(catalog, game.NewRecordStore(kv, config.DefaultRecordsKey),
		game.WithClock(clock),
		game.WithRandom(rand.New(rand.NewPCG(1, 2))),
	)
	defer session.Close()

	failed := 0
	for _, id := range catalog.IDs() {
		for _, mode := range []types.Mode{types.ModeDisassembly, types.ModeAssembly} {
			if err := runDrill(session, clock, id, mode); err != nil {
				fmt.Printf("FAIL: %s %s - %v\n", id, mode, err)
				failed++
				continue
			}
			s := session.State()
			fmt.Printf("OK: %s %-11s parts=%d time=%s score=%d\n",
				id, mode, s.PartCount(), game.FormatTime(s.Timer), s.Score)
		}
	}

	fmt.Println()
	fmt.Println("Leaderboard:")
	for i, r := range session.Records() {
		fmt.Printf("%2d. %5d  %-16s %-11s %s  %s\n", i+1, r.Score, r.Weapon, r.Mode, game.FormatTime(r.Time), r.Date)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// runDrill 完成一局训练并检查每一步的结果
func runDrill(session *game.GameSession, clock *game.ManualClock, weaponID string, mode types.Mode) error {
	if err := session.StartGame(mode, weaponID); err != nil {
		return err
	}

	s := session.State()
	n := s.PartCount()

	// 顺序错误的点击不应改变状态
	if n > 1 {
		last, _ := s.Weapon.PartByOrder(n)
		if got := session.HandlePartClick(last.ID); got != game.ClickIgnored {
			return fmt.Errorf("out-of-order click on %s: got %s", last.ID, got)
		}
	}

	clock.Advance(*ticks)

	for order := 1; order <= n; order++ {
		part, _ := s.Weapon.PartByOrder(order)
		want := game.ClickAdvanced
		if order == n {
			want = game.ClickCompleted
		}
		if got := session.HandlePartClick(part.ID); got != want {
			return fmt.Errorf("step %d (%s): got %s, want %s", order, part.ID, got, want)
		}
	}

	s = session.State()
	if s.Phase != types.PhaseComplete {
		return fmt.Errorf("phase = %s, want complete", s.Phase)
	}
	if s.Score != n*game.StepScore {
		return fmt.Errorf("score = %d, want %d", s.Score, n*game.StepScore)
	}
	if s.Timer != *ticks {
		return fmt.Errorf("timer = %d, want %d", s.Timer, *ticks)
	}
	return nil
}
