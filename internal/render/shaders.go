package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Vertex-colored and textured variants share one vertex stage. Attribute and uniform
// names follow raylib's defaults so DrawMesh binds them without lookups.
const (
	colorVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;
uniform mat4 mvp;
out vec2 fragTexCoord;
out vec4 fragColor;
void main() {
  fragTexCoord = vertexTexCoord;
  fragColor = vertexColor;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	colorFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  finalColor = fragColor * colDiffuse;
}
`
	// texturedFS samples the bound texture and ignores vertex colors.
	texturedFS = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
out vec4 finalColor;
void main() {
  finalColor = texture(texture0, fragTexCoord) * colDiffuse;
}
`
)

func loadColorShader() rl.Shader {
	return rl.LoadShaderFromMemory(colorVS, colorFS)
}

func loadTexturedShader() rl.Shader {
	return rl.LoadShaderFromMemory(colorVS, texturedFS)
}
