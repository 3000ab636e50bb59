package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"git.gammaspectra.live/P2Pool/aes128/aes128"
	"git.gammaspectra.live/P2Pool/aes128/types"
	"git.gammaspectra.live/P2Pool/aes128/utils"
	fasthex "github.com/tmthrgd/go-hex"
)

const (
	defaultKey  = "0ade29123bf3439180feadbc0f75d429"
	defaultData = "This is a demo!"

	// blocks handed to a bench worker at a time
	benchChunk = 4096
)

type report struct {
	HardwareCompiled  bool        `json:"hardware_compiled"`
	HardwareSupported bool        `json:"hardware_supported"`
	Mode              aes128.Mode `json:"mode"`
	Key               types.Key   `json:"key"`
	Plaintext         types.Block `json:"plaintext"`
	Ciphertext        types.Block `json:"ciphertext"`
	Decrypted         types.Block `json:"decrypted"`
}

// split formats a 16 byte value as two dash separated halves
func split(v []byte) string {
	var buf [types.BlockSize*2 + 1]byte
	fasthex.Encode(buf[:16], v[:8])
	buf[16] = '-'
	fasthex.Encode(buf[17:], v[8:])
	return string(buf[:])
}

func logSupport(supported bool) {
	if supported {
		utils.Logf("AES", "CPU-based AES acceleration is supported!")
	} else {
		utils.Errorf("AES", "CPU-based AES acceleration is unsupported!")
	}
}

func main() {
	keyHex := flag.String("key", defaultKey, "AES-128 key, hex encoded")
	data := flag.String("data", defaultData, "Text to encrypt, at most 16 bytes, zero padded")
	dataHex := flag.String("data-hex", "", "Block to encrypt, hex encoded. Overrides -data")
	backendName := flag.String("backend", "auto", "Backend to use: auto, software, hardware")
	policyName := flag.String("policy", "sticky", "Mode resolution policy for auto: sticky, per-context")
	configPath := flag.String("config", "", "JSON config file. Overrides -backend and -policy")
	jsonOutput := flag.Bool("json", false, "Print a JSON report instead of log lines")
	benchBlocks := flag.Uint64("bench", 0, "Encrypt this many sequential blocks in parallel and report throughput")
	benchThreads := flag.Int("threads", runtime.NumCPU(), "Goroutines for -bench")
	logLevel := flag.String("log-level", "info", "Log level: error, info, notice, debug")
	flag.Parse()

	if level, err := utils.ParseLogLevel(*logLevel); err != nil {
		utils.Fatalf("%s", err)
	} else {
		utils.GlobalLogLevel = level
	}

	cfg := aes128.DefaultConfig
	if *configPath != "" {
		buf, err := os.ReadFile(*configPath)
		if err != nil {
			utils.Fatalf("could not read config: %s", err)
		}
		c, err := aes128.NewConfigFromJSON(buf)
		if err != nil {
			utils.Fatalf("invalid config %s: %s", *configPath, err)
		}
		cfg = *c
	} else {
		var err error
		if cfg.Backend, err = aes128.ParseBackend(*backendName); err != nil {
			utils.Fatalf("%s", err)
		}
		if cfg.Policy, err = aes128.ParsePolicy(*policyName); err != nil {
			utils.Fatalf("%s", err)
		}
	}

	key, err := types.KeyFromString(*keyHex)
	if err != nil {
		utils.Fatalf("invalid key: %s", err)
	}

	var plaintext types.Block
	if *dataHex != "" {
		if plaintext, err = types.BlockFromString(*dataHex); err != nil {
			utils.Fatalf("invalid data: %s", err)
		}
	} else {
		if len(*data) > types.BlockSize {
			utils.Fatalf("data is %d bytes, at most %d allowed", len(*data), types.BlockSize)
		}
		copy(plaintext[:], *data)
	}

	if !*jsonOutput {
		logSupport(aes128.HardwareSupported())
		utils.Logf("AES", "Current Key: %s", split(key[:]))
	}

	ctx, err := aes128.NewFromKey(&key, cfg)
	if err != nil {
		utils.Fatalf("could not create context: %s", err)
	}
	defer ctx.Close()

	var ciphertext, decrypted types.Block
	ctx.Encrypt(&ciphertext, &plaintext)
	ctx.Decrypt(&decrypted, &ciphertext)

	if *jsonOutput {
		enc := utils.NewJSONEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(report{
			HardwareCompiled:  aes128.HardwareCompiled(),
			HardwareSupported: aes128.HardwareSupported(),
			Mode:              ctx.Mode(),
			Key:               key,
			Plaintext:         plaintext,
			Ciphertext:        ciphertext,
			Decrypted:         decrypted,
		}); err != nil {
			utils.Fatalf("could not encode report: %s", err)
		}
	} else {
		utils.Logf("AES", "Backend: %s", ctx.Mode())
		utils.Logf("AES", "Data Before Encryption: %s", split(plaintext[:]))
		utils.Logf("AES", "Data After Encryption: %s", split(ciphertext[:]))
		utils.Logf("AES", "Data After Decryption: %s", split(decrypted[:]))
	}

	if decrypted != plaintext {
		utils.Fatalf("round trip mismatch")
	}

	if *benchBlocks > 0 {
		bench(ctx, plaintext, *benchBlocks, *benchThreads)
	}
}

// bench encrypts the blocks plaintext, plaintext+1, ... plaintext+n-1
func bench(ctx *aes128.Context, plaintext types.Block, n uint64, threads int) {
	base := plaintext.Uint128()
	chunks := (n + benchChunk - 1) / benchChunk

	// xor of all ciphertexts, keeps the work observable
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	sums := make([]types.Block, threads)

	start := time.Now()
	err := utils.SplitWork(threads, chunks, func(workIndex uint64, routineIndex int) error {
		first := workIndex * benchChunk
		last := min(first+benchChunk, n)
		sum := &sums[routineIndex]

		var out types.Block
		for i := first; i < last; i++ {
			in := types.BlockFromUint128(base.Add64(i))
			ctx.Encrypt(&out, &in)
			for j := range sum {
				sum[j] ^= out[j]
			}
		}
		return nil
	}, nil)
	if err != nil {
		utils.Fatalf("bench failed: %s", err)
	}
	elapsed := time.Since(start)

	var total types.Block
	for _, s := range sums {
		for j := range total {
			total[j] ^= s[j]
		}
	}

	perSecond := float64(n) / elapsed.Seconds()
	utils.Logf("BENCH", "%d blocks in %s, %sblocks/s, %sB/s, checksum %s", n, elapsed, utils.SiUnits(perSecond, 2), utils.SiUnits(perSecond*types.BlockSize, 2), total)
}
