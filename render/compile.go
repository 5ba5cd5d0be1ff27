package render

import (
	"errors"
	"fmt"
	"strings"

	"glowquad/misc"
)

// ShaderCompileError carries the info log of a stage that failed to compile.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%v shader compile error: %s", e.Stage, strings.TrimSpace(e.Log))
}

// ProgramLinkError carries the program info log of a failed link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program link error: %s", strings.TrimSpace(e.Log))
}

func compileStage(ctx Context, stage Stage, src string) (Shader, error) {
	shader := ctx.CreateShader(stage)
	ctx.ShaderSource(shader, src)
	ctx.CompileShader(shader)

	if !ctx.ShaderCompiled(shader) {
		err := &ShaderCompileError{
			Stage: stage,
			Log:   ctx.ShaderInfoLog(shader),
		}
		ctx.DeleteShader(shader)
		misc.ErrLogger.Print(err)
		return Shader{}, err
	}

	return shader, nil
}

// CompileProgram compiles both stages and links them.
//
// Both stages are always compiled so a single run reports every stage
// diagnostic. Linking is skipped when any stage failed. The returned
// program is only valid when err is nil.
func CompileProgram(ctx Context, vertexSrc, fragmentSrc string) (Program, error) {
	vs, vsErr := compileStage(ctx, VertexStage, vertexSrc)
	fs, fsErr := compileStage(ctx, FragmentStage, fragmentSrc)

	if vsErr != nil || fsErr != nil {
		// release whichever stage did compile
		if vsErr == nil {
			ctx.DeleteShader(vs)
		}
		if fsErr == nil {
			ctx.DeleteShader(fs)
		}
		return Program{}, errors.Join(vsErr, fsErr)
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vs)
	ctx.AttachShader(program, fs)
	ctx.LinkProgram(program)

	// attached stages stay alive until the program is deleted
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)

	if !ctx.ProgramLinked(program) {
		err := &ProgramLinkError{Log: ctx.ProgramInfoLog(program)}
		ctx.DeleteProgram(program)
		misc.ErrLogger.Print(err)
		return Program{}, err
	}

	misc.InfoLogger.Printf("program %d linked", program.Value)

	return program, nil
}
