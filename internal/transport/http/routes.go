// Package http wires gin to workerpool and sudokucore.Stats: a
// solving/benchmarking HTTP surface using gin.H responses, request
// binding, and route grouping.
package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"sudoku-solver/internal/core"
	"sudoku-solver/internal/sudokucore"
	"sudoku-solver/internal/verifier"
	"sudoku-solver/internal/workerpool"
	"sudoku-solver/pkg/constants"
)

// RegisterRoutes attaches the solve/stats/health endpoints to r.
func RegisterRoutes(r *gin.Engine, pool *workerpool.Pool) {
	r.GET("/healthz", healthzHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler(pool))
		api.GET("/stats", statsHandler(pool))
	}
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// solveHandler accepts an 81-byte grid, dispatches it through the worker
// pool (one goroutine-worker per request, each reusing its own
// preallocated sudokucore.Stack), and returns the solved grid + Status.
func solveHandler(pool *workerpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req core.SolveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		grid, err := parseGrid(req.Grid)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		rules, err := parseRules(req.Rules)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res := pool.SubmitSync(workerpool.Job{Grid: grid, Rules: rules})

		if res.Panicked {
			c.JSON(http.StatusInternalServerError, gin.H{"error": res.PanicMsg})
			return
		}

		verified := res.Status.Verified
		if res.Status.Solved && rules == sudokucore.Regular {
			verified = verifier.Verify(res.Output)
		}

		var conflicts []core.ConflictView
		if res.Status.Solved && !verified {
			for _, cf := range verifier.FindConflicts(res.Output) {
				conflicts = append(conflicts, core.ConflictView{
					Cell1: cellRefOf(cf.Cell1),
					Cell2: cellRefOf(cf.Cell2),
					Digit: cf.Digit,
					Unit:  cf.Unit,
				})
			}
		}

		c.JSON(http.StatusOK, core.SolveResponse{
			Output:                string(res.Output[:]),
			Solved:                res.Status.Solved,
			Unique:                res.Status.Unique,
			Verified:              verified,
			UsedAssumedUniqueness: res.Status.UsedAssumedUniqueness,
			Conflicts:             conflicts,
		})
	}
}

// statsHandler dumps the shared atomic sudokucore.Stats snapshot as JSON.
func statsHandler(pool *workerpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := pool.Stats.Snapshot()
		c.JSON(http.StatusOK, core.StatsResponse{
			Solved:                    snap.Solved,
			Unsolved:                  snap.Unsolved,
			NoGuess:                   snap.NoGuess,
			Guesses:                   snap.Guesses,
			Backtracks:                snap.Backtracks,
			PastNaked:                 snap.PastNaked,
			TriadsResolved:            snap.TriadsResolved,
			TriadUpdates:              snap.TriadUpdates,
			DigitsEnteredAndRetracted: snap.DigitsEnteredAndRetracted,
			BugCount:                  snap.BugCount,
			NonUnique:                 snap.NonUnique,
			Verified:                  snap.Verified,
			NotVerified:               snap.NotVerified,
		})
	}
}

// cellRefOf converts a flat 0..80 cell index into a row/column pair.
func cellRefOf(cell int) core.CellRef {
	return core.CellRef{Row: cell / 9, Col: cell % 9}
}

func parseGrid(s string) ([81]byte, error) {
	var grid [81]byte
	if len(s) != constants.TotalCells {
		return grid, fmt.Errorf("grid must be exactly %d characters, got %d", constants.TotalCells, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '1' || c > '9') && c != '0' && c != '.' {
			return grid, fmt.Errorf("invalid character %q at position %d", c, i)
		}
		grid[i] = c
	}
	return grid, nil
}

func parseRules(s string) (sudokucore.Rules, error) {
	switch s {
	case "", "regular":
		return sudokucore.Regular, nil
	case "findone":
		return sudokucore.FindOne, nil
	case "multiple":
		return sudokucore.Multiple, nil
	default:
		return 0, fmt.Errorf("unknown rules %q", s)
	}
}
