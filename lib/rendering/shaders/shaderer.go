package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.frag *.vert
var templateDir embed.FS

const (
	VertexShaderName   = "quad.vert"
	FragmentShaderName = "quad.frag"

	DefaultGLSLVersion = "330 core"
)

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	GLSLVersion string
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	if data == nil {
		data = &ShaderData{GLSLVersion: DefaultGLSLVersion}
	}
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %w", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
