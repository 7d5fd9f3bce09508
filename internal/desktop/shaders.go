package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// toNDC maps framebuffer pixels (origin top-left) to clip space.
const toNDC = `
uniform vec2 uResolution;

vec4 toClip(vec2 px) {
    vec2 ndc = px / uResolution * 2.0 - 1.0;
    return vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
`

const rectVertSrc = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;
out vec4 vColor;
` + toNDC + `
void main() {
    gl_Position = toClip(aPos);
    vColor = aColor;
}
` + "\x00"

const rectFragSrc = `#version 410 core
in vec4 vColor;
out vec4 outColor;

void main() {
    outColor = vColor;
}
` + "\x00"

const glyphVertSrc = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;
out vec2 vUV;
out vec4 vColor;
` + toNDC + `
void main() {
    gl_Position = toClip(aPos);
    vUV = aUV;
    vColor = aColor;
}
` + "\x00"

// The atlas holds white glyphs, so only its alpha matters.
const glyphFragSrc = `#version 410 core
uniform sampler2D uAtlas;
in vec2 vUV;
in vec4 vColor;
out vec4 outColor;

void main() {
    float a = texture(uAtlas, vUV).a * vColor.a;
    if (a < 0.01) discard;
    outColor = vec4(vColor.rgb, a);
}
` + "\x00"

// infoLog reads a shader or program log through the matching getters.
func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	getiv(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(kind string, src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	cs, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, cs, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok != gl.TRUE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile %s shader: %s", kind, msg)
	}
	return sh, nil
}

// buildProgram compiles and links a vertex/fragment pair. The shader
// objects are released whether or not linking succeeds.
func buildProgram(name, vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(name+" vertex", vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(name+" fragment", fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok != gl.TRUE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link %s program: %s", name, msg)
	}
	return prog, nil
}
