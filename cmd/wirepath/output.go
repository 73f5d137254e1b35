package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"wirepath/reflection"
)

var (
	pathColor  = color.New(color.FgCyan).SprintFunc()
	typeColor  = color.New(color.FgYellow).SprintFunc()
	labelColor = color.New(color.Bold).SprintFunc()
)

type propertyView struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
}

func viewOf(p reflection.ReflectedProperty) propertyView {
	return propertyView{Path: p.Path.String(), Type: p.Type.String()}
}

// writeProperties renders props as "path: type" lines or as a YAML list.
func writeProperties(w io.Writer, format string, props []reflection.ReflectedProperty) error {
	views := make([]propertyView, 0, len(props))
	for _, p := range props {
		views = append(views, viewOf(p))
	}

	return writeViews(w, format, views, func(v propertyView) string {
		return fmt.Sprintf("%s: %s", pathColor(v.Path), typeColor(v.Type))
	})
}

func writeViews[T any](w io.Writer, format string, views []T, line func(T) string) error {
	switch format {
	case "text":
		for _, v := range views {
			if _, err := fmt.Fprintln(w, line(v)); err != nil {
				return err
			}
		}

		return nil
	case "yaml":
		out, err := yaml.Marshal(views)
		if err != nil {
			return err
		}

		_, err = w.Write(out)

		return err
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}
