// wishctl 心愿管理工具
//
// 用法：
//
//	wishctl create -name Mia -message "Happy birthday!" [-theme birthday] [-pin 1234]
//	wishctl list
//	wishctl delete <id>
//	wishctl link <id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/store"
	"github.com/decker502/wishbloom/pkg/types"
)

// maxPinLength PIN 最多 4 个字符
const maxPinLength = 4

const defaultBaseURL = "http://localhost:3000"

func main() {
	log.SetFlags(0)
	log.SetPrefix("wishctl: ")

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: wishctl <create|list|delete|link> [flags]")
}

// run 执行子命令
func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return errors.New("missing command")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(out)
	dbPath := fs.String("db", "wishes.db", "心愿数据库路径")
	baseURL := fs.String("base", defaultBaseURL, "分享链接前缀")

	switch args[0] {
	case "create":
		name := fs.String("name", "", "收件人")
		message := fs.String("message", "", "心愿内容")
		theme := fs.String("theme", string(config.ThemeBirthday), "主题")
		pin := fs.String("pin", "", "PIN（最多 4 个字符，为空表示不加锁）")
		copyLink := fs.Bool("copy", true, "复制分享链接到剪贴板")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		in := store.WishInput{Name: *name, Message: *message, Theme: *theme, Pin: *pin}
		if err := validateInput(in); err != nil {
			return err
		}
		return withStore(*dbPath, func(s *store.Store) error {
			return createWish(ctx, s, in, *baseURL, *copyLink, out)
		})

	case "list":
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return withStore(*dbPath, func(s *store.Store) error {
			wishes, err := s.List(ctx)
			if err != nil {
				return err
			}
			printWishes(out, wishes)
			return nil
		})

	case "delete":
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := requireID(fs)
		if err != nil {
			return err
		}
		return withStore(*dbPath, func(s *store.Store) error {
			if err := s.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(out, "deleted %s\n", id)
			return nil
		})

	case "link":
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		id, err := requireID(fs)
		if err != nil {
			return err
		}
		return withStore(*dbPath, func(s *store.Store) error {
			if _, err := s.Get(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(out, store.ShareLink(*baseURL, id))
			return nil
		})

	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// validateInput 校验创建参数
func validateInput(in store.WishInput) error {
	if in.Name == "" {
		return errors.New("-name is required")
	}
	if in.Message == "" {
		return errors.New("-message is required")
	}
	if _, err := config.ParseThemeKey(in.Theme); err != nil {
		return err
	}
	if utf8.RuneCountInString(in.Pin) > maxPinLength {
		return fmt.Errorf("pin must be at most %d characters", maxPinLength)
	}
	return nil
}

func requireID(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%s requires exactly one wish id", fs.Name())
	}
	return fs.Arg(0), nil
}

func withStore(path string, fn func(s *store.Store) error) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// createWish 创建心愿并输出分享链接
// 复制到剪贴板失败只记录日志
func createWish(ctx context.Context, s *store.Store, in store.WishInput, baseURL string, copyLink bool, out io.Writer) error {
	id, err := s.Create(ctx, in)
	if err != nil {
		return err
	}

	link := store.ShareLink(baseURL, id)
	fmt.Fprintf(out, "created %s\n%s\n", id, link)

	if copyLink {
		if err := clipboard.WriteAll(link); err != nil {
			log.Printf("could not copy link: %v", err)
		} else {
			fmt.Fprintln(out, "link copied to clipboard")
		}
	}
	return nil
}

// printWishes 表格输出心愿列表
func printWishes(out io.Writer, wishes []types.Wish) {
	if len(wishes) == 0 {
		fmt.Fprintln(out, "no wishes")
		return
	}

	total := 0
	locked := 0
	for _, w := range wishes {
		total += w.Views
		if w.IsProtected() {
			locked++
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTHEME\tLOCKED\tVIEWS\tCREATED")
	for _, w := range wishes {
		lock := ""
		if w.IsProtected() {
			lock = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			w.ID, w.Name, w.Theme, lock, humanize.Comma(int64(w.Views)), humanize.Time(w.CreatedAt))
	}
	tw.Flush()

	fmt.Fprintf(out, "\n%d wishes, %d locked, %s total views\n", len(wishes), locked, humanize.Comma(int64(total)))
}
