package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"

	"ufc-elo/internal/domain"
	fxmodules "ufc-elo/internal/fx"
	"ufc-elo/internal/service"
)

const version = "0.3"

type app struct {
	recalc   *service.RecalculationService
	rankings *service.RankingService
	importer *service.ImportService
	db       *sql.DB
}

func usage() {
	fmt.Printf("Usage: elo [--log-level LEVEL] COMMAND [OPTION]...\n\n")
	fmt.Printf("Commands:\n")
	fmt.Printf("  import        load the fights and fighters CSV files\n")
	fmt.Printf("  recalculate   rebuild every rating from the stored fights\n")
	fmt.Printf("  rankings      print a ranking for one dimension\n")
	fmt.Printf("  fighter NAME  print a fighter's ratings and recent fights\n")
	fmt.Printf("\n")
	flag.PrintDefaults()
	fmt.Printf("\n")
}

func main() {
	logLevel := flag.String("log-level", "warn", "Log level written to stderr.")
	flag.CommandLine.SetInterspersed(false)
	flag.ErrHelp = fmt.Errorf("version: %s", version)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	os.Setenv("LOG_LEVEL", *logLevel)

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := build()
	if err != nil {
		return err
	}
	defer a.db.Close()

	switch cmd {
	case "import":
		return a.importCmd(ctx, os.Stdout, args)
	case "recalculate":
		return a.recalculateCmd(ctx, os.Stdout, args)
	case "rankings":
		return a.rankingsCmd(ctx, os.Stdout, args)
	case "fighter":
		return a.fighterCmd(ctx, os.Stdout, args)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func build() (*app, error) {
	var a app
	fxApp := fx.New(
		fx.NopLogger,
		fx.Decorate(func(l zerolog.Logger) zerolog.Logger { return l.Output(os.Stderr) }),
		fxmodules.Module(fx.Populate(&a.recalc, &a.rankings, &a.importer, &a.db)),
	)
	if err := fxApp.Err(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (a *app) importCmd(ctx context.Context, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fightsPath := fs.StringP("fights", "f", "", "Path to the fights CSV.")
	fightersPath := fs.StringP("fighters", "p", "", "Path to the fighters CSV.")
	remote := fs.BoolP("remote", "r", false, "Download both files from DATASET_BASE_URL instead.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var res *service.ImportResult
	var err error
	if *remote {
		res, err = a.importer.ImportRemote(ctx)
	} else {
		if *fightsPath == "" && *fightersPath == "" {
			return errors.New("nothing to import, pass --fights and/or --fighters")
		}
		fights, closeFights, openErr := open(*fightsPath)
		if openErr != nil {
			return openErr
		}
		defer closeFights()
		fighters, closeFighters, openErr := open(*fightersPath)
		if openErr != nil {
			return openErr
		}
		defer closeFighters()
		res, err = a.importer.Import(ctx, fights, fighters)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Imported %s fights (%s rejected) and %s fighters (%s rejected)\n",
		humanize.Comma(int64(res.Fights)), humanize.Comma(int64(res.RejectedFights)),
		humanize.Comma(int64(res.Fighters)), humanize.Comma(int64(res.RejectedFighters)))
	return nil
}

// open returns a nil reader for an empty path.
func open(path string) (io.Reader, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func (a *app) recalculateCmd(ctx context.Context, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("recalculate", flag.ContinueOnError)
	quiet := fs.BoolP("quiet", "q", false, "Do not draw a progress bar.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var opts []service.RecalcOption
	var bar *pb.ProgressBar
	if !*quiet {
		tmpl := `{{ green "Fights:" }} {{ bar . "[" "#" "#" "." "]"}} {{counters .}} {{percent .}}`
		bar = pb.ProgressBarTemplate(tmpl).Start64(0)
		opts = append(opts, service.WithProgress(func(done, total int) {
			bar.SetTotal(int64(total))
			bar.SetCurrent(int64(done))
		}))
	}

	summary, err := a.recalc.RecalculateAll(ctx, opts...)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s: %s fights processed, %s skipped, %s fighters rated in %s\n",
		summary.RunID,
		humanize.Comma(int64(summary.Processed)),
		humanize.Comma(int64(summary.Skipped)),
		humanize.Comma(int64(summary.Fighters)),
		summary.Duration.Round(time.Millisecond))
	return nil
}

func (a *app) rankingsCmd(ctx context.Context, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("rankings", flag.ContinueOnError)
	dimension := fs.StringP("dimension", "d", string(domain.DimensionCombined), "One of: "+dimensionNames()+".")
	limit := fs.IntP("limit", "n", 20, "Number of fighters to print.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dim, err := domain.ParseDimension(*dimension)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if dim == domain.DimensionCombined {
		rows, err := a.rankings.GetCombinedRankings(ctx, *limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(tw, "#\tFIGHTER\tELO\tFIGHTS\tLAST FIGHT")
		for i, row := range rows {
			last := "-"
			if len(row.LastFights) > 0 {
				last = row.LastFights[0].String()
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", i+1, row.Rating.FighterName,
				humanize.Comma(int64(domain.Round(row.Rating.Combined))), row.Rating.FightCount, last)
		}
		return tw.Flush()
	}

	ratings, err := a.rankings.GetRankings(ctx, dim, *limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(tw, "#\tFIGHTER\tELO\tFIGHTS")
	for i, r := range ratings {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, r.FighterName, humanize.Comma(int64(domain.Round(dim.Value(r)))), r.FightCount)
	}
	return tw.Flush()
}

func (a *app) fighterCmd(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("fighter name not supplied")
	}
	name := strings.Join(args, " ")

	detail, err := a.rankings.GetFighter(ctx, name)
	if err != nil {
		return err
	}
	fights, err := a.rankings.ListFights(ctx, name)
	if err != nil {
		return err
	}

	r := detail.Rating
	fmt.Fprintf(w, "%s\n", r.FighterName)
	if p := detail.Profile; p != nil {
		fmt.Fprintf(w, "  %s, %s, %s stance\n", p.Height, p.Weight, p.Stance)
	}
	fmt.Fprintf(w, "  %s fights (%d title fights), win streak %d (best %d)\n",
		humanize.Comma(int64(r.FightCount)), r.TitleFightCount, r.CurrentWinStreak, r.HighestWinStreak)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, dim := range domain.Dimensions {
		fmt.Fprintf(tw, "  %s\t%d\n", dim, domain.Round(dim.Value(r)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, ach := range r.DoubleChampAchievements {
		fmt.Fprintf(w, "  double champ on %s: %s\n", ach.Date.Format(time.DateOnly), strings.Join(ach.WeightClasses, ", "))
	}

	start := max(0, len(fights)-5)
	for _, f := range fights[start:] {
		fmt.Fprintf(w, "  %s vs %s, %s (%s)\n", f.Date.Format(time.DateOnly), f.Opponent(name), f.WinBy, humanize.Time(f.Date))
	}
	return nil
}

func dimensionNames() string {
	names := make([]string, len(domain.Dimensions))
	for i, d := range domain.Dimensions {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
