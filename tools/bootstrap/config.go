package bootstrap

import "rboot/tools/renv"

// Default package sets for a fresh statistical-analysis project. These
// are plain configuration: override them with --package/--packages-file
// and their bioc counterparts.
var (
	DefaultPackages = []string{
		"tidyverse",
		"data.table",
		"survival",
		"survminer",
		"glmnet",
	}

	DefaultBiocPackages = []string{
		"limma",
		"edgeR",
		"DESeq2",
	}
)

type Config struct {
	ProjectDir   string
	Packages     *renv.PackageList
	BiocPackages *renv.PackageList
}

func DefaultConfig(projectDir string) *Config {
	return &Config{
		ProjectDir:   projectDir,
		Packages:     &renv.PackageList{Packages: DefaultPackages},
		BiocPackages: &renv.PackageList{Packages: DefaultBiocPackages},
	}
}
