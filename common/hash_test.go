// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102", ToHex([]byte{1, 2}))
	b, err := FromHex("0x102")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)
	b, err = FromHex("")
	require.Nil(t, err)
	assert.Equal(t, []byte{}, b)
	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	a := []byte("abc")
	b := CopyBytes(a)
	b[0] = 'x'
	assert.Equal(t, []byte("abc"), a)
}

func TestKeccak(t *testing.T) {
	// keccak256("") 的已知结果
	assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", ToHex(ShaKeccak256()))
	assert.Equal(t, ShaKeccak256([]byte("ab")), ShaKeccak256([]byte("a"), []byte("b")))
}

func TestSha(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	out := Sha2Sum([]byte("a"))
	assert.Equal(t, Sha256(Sha256([]byte("a"))), out[:])
	r := Rimp160AfterSha256([]byte("a"))
	assert.Len(t, r[:], 20)
}
