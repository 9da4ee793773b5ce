package vm

import (
	"bytes"
	"testing"
)

func TestBundleRoundTrip(t *testing.T) {
	chunk := compile(t, "x := 10; imprima x")

	bundle := NewBundle(chunk, "exemplo.lina")
	if bundle.BuildID == "" {
		t.Errorf("bundle has no build id")
	}

	data, err := bundle.Serialize()
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}

	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %s", err)
	}

	if !bytes.Equal(got.Chunk.Code, chunk.Code) {
		t.Errorf("bytecode changed across the round trip")
	}
	if len(got.Chunk.Constants) != len(chunk.Constants) {
		t.Fatalf("pool size changed: %d, want %d", len(got.Chunk.Constants), len(chunk.Constants))
	}
	for i := range chunk.Constants {
		if !got.Chunk.Constants[i].Equals(chunk.Constants[i]) {
			t.Errorf("constant %d changed across the round trip", i)
		}
	}
	if got.SourceFile != "exemplo.lina" {
		t.Errorf("source file = %q", got.SourceFile)
	}
	if got.BuildID != bundle.BuildID {
		t.Errorf("build id changed across the round trip")
	}
}

func TestBundleRoundTripRuns(t *testing.T) {
	chunk := compile(t, "x := 0; enquanto x < 3 faça x := x + 1; fim; imprima x")

	data, err := NewBundle(chunk, "laço.lina").Serialize()
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}
	bundle, err := Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %s", err)
	}

	m := New()
	var out bytes.Buffer
	m.SetOutput(&out)
	if err := m.Run(bundle.Chunk); err != nil {
		t.Fatalf("run: %s", err)
	}
	if out.String() != "3\n" {
		t.Errorf("output = %q, want %q", out.String(), "3\n")
	}
}

func TestDeserializeRejectsBadInput(t *testing.T) {
	chunk := compile(t, "imprima 1")
	data, err := NewBundle(chunk, "x.lina").Serialize()
	if err != nil {
		t.Fatalf("serialize: %s", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated header", data[:3]},
		{"wrong magic", append([]byte("XXXX"), data[4:]...)},
		{"unknown version", append(append([]byte{}, data[:4]...), append([]byte{0x7f}, data[5:]...)...)},
		{"corrupt payload", data[:8]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Deserialize(tt.data); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestValidateRequiresHaltTermination(t *testing.T) {
	chunk := NewChunk()
	chunk.WriteOp(OpConst, 1)
	chunk.WriteOperand(0, 1)
	chunk.AddConstant(IntVal(1))
	chunk.WriteOp(OpPop, 1)

	b := &Bundle{Chunk: chunk}
	if err := b.Validate(); err == nil {
		t.Errorf("expected validation to reject bytecode without a final halt")
	}

	chunk.WriteOp(OpHalt, 1)
	if err := b.Validate(); err != nil {
		t.Errorf("halt-terminated chunk rejected: %s", err)
	}
}
