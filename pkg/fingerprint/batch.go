// pkg/fingerprint/batch.go
package fingerprint

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/lk2023060901/xintegrity/pkg/strategy"
)

// BatchResult 批量指纹计算的单条结果
// 与输入路径一一对应，保持输入顺序
type BatchResult struct {
	Path        string
	Fingerprint Fingerprint
	Err         error
}

// BatchFiles 并发计算多个文件的指纹
// 每个路径完全独立；并发度由 worker 池限制（默认 10），
// 防止文件描述符被耗尽
//
// ctx 仅在任务开始前检查，已开始的计算会跑到结束，
// 引擎内部没有取消语义
func (g *Generator) BatchFiles(ctx context.Context, paths []string, uc strategy.UseCase) ([]BatchResult, error) {
	results := make([]BatchResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	pool, err := ants.NewPool(g.concurrency)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		results[i].Path = path

		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}
			results[i].Fingerprint, results[i].Err = g.FingerprintFile(path, uc)
		}); err != nil {
			wg.Done()
			results[i].Err = errors.Wrap(err, "submit task")
		}
	}
	wg.Wait()

	return results, nil
}
