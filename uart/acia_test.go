package uart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObserver is a minimal Observer backed by a flat byte array, enough
// to drive Device.Step without a real cpu.Chip.
type fakeObserver struct {
	mem        [1 << 16]uint8
	readAddr   uint16
	readValid  bool
	writeAddr  uint16
	writeValid bool
}

func (f *fakeObserver) LastRead() (uint16, bool)  { return f.readAddr, f.readValid }
func (f *fakeObserver) LastWrite() (uint16, bool) { return f.writeAddr, f.writeValid }
func (f *fakeObserver) ClearLastRead()            { f.readValid = false }
func (f *fakeObserver) ClearLastWrite()           { f.writeValid = false }
func (f *fakeObserver) Peek(addr uint16) uint8    { return f.mem[addr] }
func (f *fakeObserver) Poke(addr uint16, val uint8) {
	f.mem[addr] = val
}

// fakeStdin is a canned StdinReader for deterministic tests.
type fakeStdin struct {
	bytes []byte
	pos   int
}

func (f *fakeStdin) Ready() bool {
	return f.pos < len(f.bytes)
}

func (f *fakeStdin) ReadByte() (byte, error) {
	b := f.bytes[f.pos]
	f.pos++
	return b, nil
}

func TestDeviceInitSetsTDRE(t *testing.T) {
	var out bytes.Buffer
	d := NewDevice(false, &fakeStdin{}, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)

	obs.Poke(CtrlAddr, 0)
	d.Step(obs)
	assert.NotZero(t, obs.Peek(CtrlAddr)&StatusTDRE, "TDRE should be set after init")
}

func TestDeviceEchoesWrittenByte(t *testing.T) {
	var out bytes.Buffer
	d := NewDevice(false, &fakeStdin{}, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)

	obs.Poke(DataAddr, 'X')
	obs.writeAddr, obs.writeValid = DataAddr, true
	d.Step(obs)

	assert.Equal(t, "X", out.String())
	_, valid := obs.LastWrite()
	assert.False(t, valid, "write observation should be cleared after Step")
}

func TestDeviceBackspaceDoubleEcho(t *testing.T) {
	var out bytes.Buffer
	d := NewDevice(false, &fakeStdin{}, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)

	obs.Poke(DataAddr, '\b')
	obs.writeAddr, obs.writeValid = DataAddr, true
	d.Step(obs)

	assert.Equal(t, "\b \b", out.String())
}

func TestDeviceReadClearsRDRF(t *testing.T) {
	var out bytes.Buffer
	d := NewDevice(false, &fakeStdin{}, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)
	d.status = StatusRDRF

	obs.readAddr, obs.readValid = DataAddr, true
	d.Step(obs)

	assert.Zero(t, d.status&StatusRDRF)
	_, valid := obs.LastRead()
	assert.False(t, valid)
}

func TestDevicePollsStdinAtStepZero(t *testing.T) {
	var out bytes.Buffer
	stdin := &fakeStdin{bytes: []byte{'a'}}
	d := NewDevice(false, stdin, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)

	d.Step(obs)

	require.NotZero(t, d.status&StatusRDRF)
	assert.Equal(t, uint8('a'), obs.Peek(DataAddr))
}

func TestDeviceInteractiveDelTranslatesToBackspace(t *testing.T) {
	var out bytes.Buffer
	stdin := &fakeStdin{bytes: []byte{0x7F}}
	d := NewDevice(true, stdin, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)

	d.Step(obs)

	assert.Equal(t, uint8('\b'), d.incoming)
}

func TestDeviceInteractiveCtrlXExits(t *testing.T) {
	var out bytes.Buffer
	stdin := &fakeStdin{bytes: []byte{0x18}}
	exited := false
	restored := false
	d := NewDevice(true, stdin, &out,
		func() error { restored = true; return nil },
		func() { exited = true })
	obs := &fakeObserver{}
	d.Init(obs)

	d.Step(obs)

	assert.True(t, restored, "terminal restore should run before exit")
	assert.True(t, exited, "exit hook should be invoked on CTRL-X")
	assert.Equal(t, "\r\n", out.String())
}

func TestDeviceDoesNotPollWhenRDRFAlreadySet(t *testing.T) {
	var out bytes.Buffer
	stdin := &fakeStdin{bytes: []byte{'z'}}
	d := NewDevice(false, stdin, &out, nil, nil)
	obs := &fakeObserver{}
	d.Init(obs)
	d.status = StatusRDRF
	d.incoming = 'a'

	d.Step(obs)

	assert.Equal(t, uint8('a'), obs.Peek(DataAddr), "pending byte should not be overwritten")
}
