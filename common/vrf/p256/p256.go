// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p256 implements a verifiable random function using curve p256.
package p256

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math/big"

	vrfp "github.com/33cn/coinflip/common/vrf"
)

var (
	curve  = elliptic.P256()
	params = curve.Params()
	// ErrInvalidVRF err
	ErrInvalidVRF = errors.New("invalid VRF proof")
	// ErrPointNotOnCurve err
	ErrPointNotOnCurve = errors.New("point is not on the P256 curve")
	// ErrWrongKeyType err
	ErrWrongKeyType = errors.New("not an ECDSA key")
)

// proof 布局: s(32) | t(32) | vrf(65)
const (
	scalarLen = 32
	pointLen  = 65
	proofLen  = 2*scalarLen + pointLen
)

// PublicKey holds a public VRF key.
type PublicKey struct {
	*ecdsa.PublicKey
}

// PrivateKey holds a private VRF key.
type PrivateKey struct {
	*ecdsa.PrivateKey
}

// GenerateKey generates a fresh keypair for this VRF
func GenerateKey() (vrfp.PrivateKey, vrfp.PublicKey) {
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, nil
	}
	return &PrivateKey{PrivateKey: key}, &PublicKey{PublicKey: &key.PublicKey}
}

// NewKeyFromSeed 由种子确定性地生成密钥对
func NewKeyFromSeed(seed []byte) (*PrivateKey, *PublicKey) {
	d := H2(seed)
	key := new(ecdsa.PrivateKey)
	key.Curve = curve
	key.D = d
	key.X, key.Y = params.ScalarBaseMult(d.Bytes())
	return &PrivateKey{PrivateKey: key}, &PublicKey{PublicKey: &key.PublicKey}
}

// MarshalPublicKey 非压缩格式编码公钥
func MarshalPublicKey(pk *PublicKey) []byte {
	return elliptic.Marshal(curve, pk.X, pk.Y)
}

// ParsePublicKey 解析非压缩格式的公钥
func ParsePublicKey(data []byte) (*PublicKey, error) {
	x, y := elliptic.Unmarshal(curve, data)
	if x == nil {
		return nil, ErrPointNotOnCurve
	}
	return &PublicKey{PublicKey: &ecdsa.PublicKey{Curve: curve, X: x, Y: y}}, nil
}

// NewVRFVerifier 从 crypto.PublicKey 构造校验者
func NewVRFVerifier(pubkey crypto.PublicKey) (*PublicKey, error) {
	switch pk := pubkey.(type) {
	case *PublicKey:
		return pk, nil
	case *ecdsa.PublicKey:
		if pk.Params().Name != params.Name {
			return nil, ErrWrongKeyType
		}
		return &PublicKey{PublicKey: pk}, nil
	}
	return nil, ErrWrongKeyType
}

// H1 hashes m to a curve point
func H1(m []byte) (x, y *big.Int) {
	h := sha512.New()
	var i uint32
	byteLen := (params.BitSize + 7) >> 3
	for x == nil && i < 100 {
		h.Reset()
		if err := binary.Write(h, binary.BigEndian, i); err != nil {
			panic(err)
		}
		if _, err := h.Write(m); err != nil {
			panic(err)
		}
		r := []byte{2} // Set point encoding to "compressed", y=0.
		r = h.Sum(r)
		x, y = Unmarshal(curve, r[:byteLen+1])
		i++
	}
	return
}

var one = big.NewInt(1)

// H2 hashes to an integer [1,N-1]
func H2(m []byte) *big.Int {
	// NIST SP 800-90A § A.5.1: Simple discard method.
	byteLen := (params.BitSize + 7) >> 3
	h := sha512.New()
	for i := uint32(0); ; i++ {
		h.Reset()
		if err := binary.Write(h, binary.BigEndian, i); err != nil {
			panic(err)
		}
		if _, err := h.Write(m); err != nil {
			panic(err)
		}
		b := h.Sum(nil)
		k := new(big.Int).SetBytes(b[:byteLen])
		if k.Cmp(new(big.Int).Sub(params.N, one)) == -1 {
			return k.Add(k, one)
		}
	}
}

// Unmarshal 解析压缩格式的曲线点, 失败时返回 nil
func Unmarshal(curve elliptic.Curve, data []byte) (x, y *big.Int) {
	byteLen := (curve.Params().BitSize + 7) >> 3
	if len(data) != 1+byteLen {
		return nil, nil
	}
	if data[0] != 2 && data[0] != 3 {
		return nil, nil
	}
	p := curve.Params().P
	x = new(big.Int).SetBytes(data[1:])
	if x.Cmp(p) >= 0 {
		return nil, nil
	}
	// y² = x³ - 3x + b
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	threeX := new(big.Int).Lsh(x, 1)
	threeX.Add(threeX, x)
	y2.Sub(y2, threeX)
	y2.Add(y2, curve.Params().B)
	y2.Mod(y2, p)
	y = new(big.Int).ModSqrt(y2, p)
	if y == nil {
		return nil, nil
	}
	if byte(y.Bit(0)) != data[0]&1 {
		y.Neg(y).Mod(y, p)
	}
	if !curve.IsOnCurve(x, y) {
		return nil, nil
	}
	return x, y
}

// challenge 计算 H2(G, H, [k]G, VRF, P1, P2)
func challenge(hx, hy, pkx, pky *big.Int, vrf []byte, p1x, p1y, p2x, p2y *big.Int) *big.Int {
	var b bytes.Buffer
	b.Write(elliptic.Marshal(curve, params.Gx, params.Gy))
	b.Write(elliptic.Marshal(curve, hx, hy))
	b.Write(elliptic.Marshal(curve, pkx, pky))
	b.Write(vrf)
	b.Write(elliptic.Marshal(curve, p1x, p1y))
	b.Write(elliptic.Marshal(curve, p2x, p2y))
	return H2(b.Bytes())
}

// padScalar 左补零到32字节
func padScalar(v *big.Int) []byte {
	out := make([]byte, scalarLen)
	b := v.Bytes()
	copy(out[scalarLen-len(b):], b)
	return out
}

// Evaluate returns the verifiable unpredictable function evaluated at m
func (k PrivateKey) Evaluate(m []byte) (index [32]byte, proof []byte) {
	nilIndex := [32]byte{}
	// Prover chooses r <-- [1,N-1]
	r, _, _, err := elliptic.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nilIndex, nil
	}
	ri := new(big.Int).SetBytes(r)

	// H = H1(m)
	hx, hy := H1(m)

	// VRF_k(m) = [k]H
	sHx, sHy := params.ScalarMult(hx, hy, k.D.Bytes())
	vrf := elliptic.Marshal(curve, sHx, sHy)

	// s = H2(G, H, [k]G, VRF, [r]G, [r]H)
	rGx, rGy := params.ScalarBaseMult(r)
	rHx, rHy := params.ScalarMult(hx, hy, r)
	s := challenge(hx, hy, k.PublicKey.X, k.PublicKey.Y, vrf, rGx, rGy, rHx, rHy)

	// t = r−s*k mod N
	t := new(big.Int).Sub(ri, new(big.Int).Mul(s, k.D))
	t.Mod(t, params.N)

	proof = make([]byte, 0, proofLen)
	proof = append(proof, padScalar(s)...)
	proof = append(proof, padScalar(t)...)
	proof = append(proof, vrf...)
	return sha256.Sum256(vrf), proof
}

// ProofToHash asserts that proof is correct for m and outputs index.
func (pk *PublicKey) ProofToHash(m, proof []byte) (index [32]byte, err error) {
	nilIndex := [32]byte{}
	// verifier checks that s == H2(m, [t]G + [s]([k]G), [t]H1(m) + [s]VRF_k(m))
	if len(proof) != proofLen {
		return nilIndex, ErrInvalidVRF
	}
	s := proof[0:scalarLen]
	t := proof[scalarLen : 2*scalarLen]
	vrf := proof[2*scalarLen:]

	uHx, uHy := elliptic.Unmarshal(curve, vrf)
	if uHx == nil {
		return nilIndex, ErrInvalidVRF
	}

	// [t]G + [s]([k]G) = [t+ks]G
	tGx, tGy := params.ScalarBaseMult(t)
	ksGx, ksGy := params.ScalarMult(pk.X, pk.Y, s)
	tksGx, tksGy := params.Add(tGx, tGy, ksGx, ksGy)

	// [t]H + [s]VRF = [t+ks]H
	hx, hy := H1(m)
	tHx, tHy := params.ScalarMult(hx, hy, t)
	sHx, sHy := params.ScalarMult(uHx, uHy, s)
	tksHx, tksHy := params.Add(tHx, tHy, sHx, sHy)

	h2 := challenge(hx, hy, pk.X, pk.Y, vrf, tksGx, tksGy, tksHx, tksHy)
	if !hmac.Equal(s, padScalar(h2)) {
		return nilIndex, ErrInvalidVRF
	}
	return sha256.Sum256(vrf), nil
}

// Public returns the corresponding public key as bytes.
func (k PrivateKey) Public() crypto.PublicKey {
	return &PublicKey{PublicKey: &k.PublicKey}
}
