package config

import (
	"github.com/spf13/viper"

	"github.com/nxt-gen-cli/nxt-gen/pkg/models"
)

// Preset file lookup.
const (
	ConfigName = ".nxtgen"
	ConfigType = "yaml"
	EnvPrefix  = "NXTGEN"
)

// Keys understood in the preset file. Each maps to NXTGEN_<KEY> in the
// environment.
const (
	KeyPrisma       = "prisma"
	KeyReactQuery   = "react_query"
	KeyAxios        = "axios"
	KeyUI           = "ui"
	KeyFramerMotion = "framer_motion"
	KeyLucide       = "lucide"
	KeyExamples     = "examples"
	KeyConfig       = "config"
)

// setDefaults registers the built-in defaults. Registering every key also
// lets Unmarshal see values that only exist in the environment.
func setDefaults(v *viper.Viper) {
	d := models.DefaultProjectConfig()
	v.SetDefault(KeyPrisma, d.Prisma)
	v.SetDefault(KeyReactQuery, d.ReactQuery)
	v.SetDefault(KeyAxios, d.Axios)
	v.SetDefault(KeyUI, string(d.UI))
	v.SetDefault(KeyFramerMotion, d.FramerMotion)
	v.SetDefault(KeyLucide, d.Lucide)
	v.SetDefault(KeyExamples, string(d.Examples))
}
