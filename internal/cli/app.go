package cli

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yigit/coursecatalog/internal/app/services"
	"github.com/yigit/coursecatalog/internal/bootstrap"
	"github.com/yigit/coursecatalog/internal/catalog"
	"github.com/yigit/coursecatalog/internal/config"
	"github.com/yigit/coursecatalog/internal/pkg/auth"
	"github.com/yigit/coursecatalog/internal/pkg/logger"
)

// NewApp builds the command tree. Results go to out, logs to errOut, and
// interactive answers are read from in.
func NewApp(in io.Reader, out, errOut io.Writer) *cli.App {
	fileFlag := &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Usage:    "course file to load",
		Required: true,
	}
	pageSizeFlag := &cli.IntFlag{
		Name:  "page-size",
		Usage: "courses printed per page",
		Value: catalog.DefaultPageSize,
	}

	return &cli.App{
		Name:      "catalog",
		Usage:     "load a course file and query it",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,

		// exit codes are handled by the caller, never by os.Exit here
		ExitErrHandler: func(*cli.Context, error) {},

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "configuration file",
				Value:   config.DefaultPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, error or disabled",
				Value: string(logger.WarnLevel),
			},
		},
		Before: func(c *cli.Context) error {
			logger.Configure(logger.Config{
				Level:  logger.ParseLevel(c.String("log-level")),
				Pretty: true,
				Output: c.App.ErrWriter,
			})
			return nil
		},
		Action: func(c *cli.Context) error {
			return runMenu(c, pageSizeFlag.Value)
		},
		Commands: []*cli.Command{
			{
				Name:  "menu",
				Usage: "start the interactive course planner",
				Flags: []cli.Flag{pageSizeFlag},
				Action: func(c *cli.Context) error {
					return runMenu(c, c.Int("page-size"))
				},
			},
			{
				Name:  "list",
				Usage: "print every course sorted by course number",
				Flags: []cli.Flag{fileFlag},
				Action: func(c *cli.Context) error {
					svc, err := loadService(c)
					if err != nil {
						return err
					}
					courses, err := svc.ListAll(c.Context)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return catalog.NewReporter(c.App.Writer, 0, nil).Write(courses)
				},
			},
			{
				Name:      "show",
				Usage:     "print one course with its prerequisites",
				ArgsUsage: "COURSE",
				Flags:     []cli.Flag{fileFlag},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit("exactly one course number is required", 2)
					}
					svc, err := loadService(c)
					if err != nil {
						return err
					}
					detail, err := svc.GetCourse(c.Context, c.Args().First())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					_, err = fmt.Fprint(c.App.Writer, FormatCourseDetail(detail))
					return err
				},
			},
			{
				Name:  "token",
				Usage: "mint an admin token for the reload endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Value: "admin", Usage: "token subject"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig(c.String("config"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateToken(c.String("subject"), auth.RoleAdmin)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					logger.Info().Time("expiresAt", expiresAt).Msg("Admin token issued")
					_, err = fmt.Fprintln(c.App.Writer, token)
					return err
				},
			},
		},
	}
}

func runMenu(c *cli.Context, pageSize int) error {
	svc := services.NewCatalogService(logger.Get())
	return NewMenu(c.App.Reader, c.App.Writer, svc, pageSize).Run(c.Context)
}

func loadService(c *cli.Context) (services.CatalogService, error) {
	svc := services.NewCatalogService(logger.Get())
	if _, err := svc.LoadFromFile(c.Context, c.String("file")); err != nil {
		return nil, cli.Exit(err.Error(), 1)
	}
	return svc, nil
}
