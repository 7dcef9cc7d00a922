package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the file extension the directory walker picks up.
const SourceExt = ".ks"

// DirResult содержит результат токенизации одного файла.
type DirResult struct {
	Path   string  // путь к файлу
	Result *Result // nil, если файл не удалось загрузить
	Err    error   // ошибка загрузки источника
}

// listSourceFiles возвращает отсортированный список всех *.ks файлов в директории.
func listSourceFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.ks файлы в директории параллельно.
// Результаты идут в порядке отсортированных путей; ошибка загрузки одного
// файла не прерывает остальные.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]DirResult, error) {
	return TokenizeDirExt(ctx, dir, SourceExt, maxDiagnostics, jobs)
}

// TokenizeDirExt is TokenizeDir with a caller-chosen file extension.
func TokenizeDirExt(ctx context.Context, dir, ext string, maxDiagnostics, jobs int) ([]DirResult, error) {
	files, err := listSourceFiles(dir, ext)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := TokenizeFile(path, maxDiagnostics)
			results[i] = DirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
