package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding the scoring rules.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given directory.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	// Helpers first, then the rules that use them.
	for _, sub := range []string{"core", "score"} {
		p := filepath.Join(scriptsDir, sub)
		if err := e.loadDir(p); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}

	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ScoreContext holds the round numbers handed to calc_score.
type ScoreContext struct {
	Hits    int
	Shots   int
	Seconds float64
}

// ScoreResult is returned by the Lua scoring function.
type ScoreResult struct {
	Score int
	Grade string
}

// fallbackScore is used when the script is missing or fails: a flat
// 100 per hit.
func fallbackScore(ctx ScoreContext) ScoreResult {
	return ScoreResult{Score: ctx.Hits * 100}
}

// CalcScore calls the Lua calc_score function.
func (e *Engine) CalcScore(ctx ScoreContext) ScoreResult {
	fn := e.vm.GetGlobal("calc_score")
	if fn == lua.LNil {
		e.log.Error("lua function calc_score not found")
		return fallbackScore(ctx)
	}

	t := e.vm.NewTable()
	t.RawSetString("hits", lua.LNumber(ctx.Hits))
	t.RawSetString("shots", lua.LNumber(ctx.Shots))
	t.RawSetString("seconds", lua.LNumber(ctx.Seconds))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua calc_score error", zap.Error(err))
		return fallbackScore(ctx)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua calc_score returned non-table")
		return fallbackScore(ctx)
	}

	score := lInt(rt, "score")
	if score < 0 {
		score = 0
	}
	return ScoreResult{
		Score: score,
		Grade: lStr(rt, "grade"),
	}
}

// --- Lua helpers ---

// lInt reads an integer field from a Lua table.
func lInt(t *lua.LTable, key string) int {
	return int(lua.LVAsNumber(t.RawGetString(key)))
}

// lStr reads a string field from a Lua table.
func lStr(t *lua.LTable, key string) string {
	return lua.LVAsString(t.RawGetString(key))
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
