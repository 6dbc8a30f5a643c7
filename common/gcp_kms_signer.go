package common

import (
	"context"
	"fmt"
	"time"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/ethereum/go-ethereum/common"

	gax "github.com/googleapis/gax-go/v2"
)

const kmsTimeout = 30 * time.Second

type GCPKeyManagementClient interface {
	Close() error
	GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
	AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error)
}

// GcpKmsSigner signs mint transactions with a secp256k1 key version held
// in Cloud KMS. The key name is the full cryptoKeyVersions resource path.
type GcpKmsSigner struct {
	client     GCPKeyManagementClient
	keyName    string
	ethAddress common.Address
}

var _ Signer = &GcpKmsSigner{}

var NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}

func NewGcpKmsSigner(keyName string) (*GcpKmsSigner, error) {
	ctx, cancel := context.WithTimeout(context.Background(), kmsTimeout)
	defer cancel()

	client, err := NewGCPKeyManagementClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create KMS client: %w", err)
	}

	point, err := fetchSigningKey(ctx, client, keyName)
	if err != nil {
		return nil, err
	}

	return &GcpKmsSigner{
		client:     client,
		keyName:    keyName,
		ethAddress: addressOf(point),
	}, nil
}

func fetchSigningKey(ctx context.Context, client GCPKeyManagementClient, keyName string) ([]byte, error) {
	version, err := client.GetCryptoKeyVersion(ctx, &kmspb.GetCryptoKeyVersionRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}
	if version.Algorithm != kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256 {
		return nil, fmt.Errorf("key %s uses %s, want EC_SIGN_SECP256K1_SHA256", keyName, version.Algorithm)
	}

	publicKey, err := client.GetPublicKey(ctx, &kmspb.GetPublicKeyRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	point, err := decodeKMSPublicKey(publicKey.Pem)
	if err != nil {
		return nil, fmt.Errorf("public key %s: %w", keyName, err)
	}
	return point, nil
}

func (s *GcpKmsSigner) Destroy() {
	s.client.Close()
}

func (s *GcpKmsSigner) SignHash(hash common.Hash) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), kmsTimeout)
	defer cancel()

	resp, err := s.client.AsymmetricSign(ctx, &kmspb.AsymmetricSignRequest{
		Name:   s.keyName,
		Digest: &kmspb.Digest{Digest: &kmspb.Digest_Sha256{Sha256: hash[:]}},
	})
	if err != nil {
		return nil, fmt.Errorf("asymmetric sign operation: %w", err)
	}

	sigR, sigS, err := decodeDERSignature(resp.Signature)
	if err != nil {
		return nil, err
	}
	return recoverableSignature(hash, sigR, sigS, s.ethAddress)
}

func (s *GcpKmsSigner) EthAddress() common.Address {
	return s.ethAddress
}
