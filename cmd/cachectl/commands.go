package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Funeraria-api/internal/domain"
	"github.com/jhoicas/Funeraria-api/internal/domain/repository"
	"github.com/jhoicas/Funeraria-api/internal/infrastructure/cache"
)

type openFunc func(ctx context.Context, path string) (repository.CacheStore, func() error, error)

func openSQLite(ctx context.Context, path string) (repository.CacheStore, func() error, error) {
	s, err := cache.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return s, s.Close, nil
}

func newRootCmd(out io.Writer, defaultPath string, open openFunc) *cobra.Command {
	var path string

	withStore := func(cmd *cobra.Command, fn func(ctx context.Context, s repository.CacheStore) error) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		s, closeFn, err := open(ctx, path)
		if err != nil {
			return fmt.Errorf("abrir caché %s: %w", path, err)
		}
		defer closeFn()
		return fn(ctx, s)
	}

	root := &cobra.Command{
		Use:           "cachectl",
		Short:         "Inspecciona la caché local de colecciones",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.PersistentFlags().StringVar(&path, "path", defaultPath, "archivo SQLite de la caché")

	root.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "Lista las claves (<colección>:<parlor_id>) con instantánea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, func(ctx context.Context, s repository.CacheStore) error {
				keys, err := s.Keys(ctx)
				if err != nil {
					return err
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintln(out, k)
				}
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "show <key>",
		Short: "Muestra la instantánea de una clave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, s repository.CacheStore) error {
				blob, err := s.Get(ctx, args[0])
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("sin instantánea para %q", args[0])
				}
				if err != nil {
					return err
				}
				var items []json.RawMessage
				if err := json.Unmarshal(blob, &items); err != nil {
					return fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
				}
				var pretty bytes.Buffer
				if err := json.Indent(&pretty, blob, "", "  "); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d registros)\n%s\n", args[0], len(items), pretty.String())
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "reset <key>",
		Short: "Elimina la instantánea de una clave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, s repository.CacheStore) error {
				if err := s.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s eliminada\n", args[0])
				return nil
			})
		},
	})

	return root
}
