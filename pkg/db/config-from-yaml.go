package db

import "fmt"

func DBConfigFromYamlObj(yamlObj DBConfigYaml, instanceIDs []string) DBConfig {
	uri := fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)
	if yamlObj.Username == "" && yamlObj.Password == "" {
		uri = fmt.Sprintf(`mongodb%s://%s`, yamlObj.ConnectionPrefix, yamlObj.ConnectionStr)
	}

	return DBConfig{
		URI:              uri,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		Timeout:          yamlObj.Timeout,
		NoCursorTimeout:  yamlObj.UseNoCursorTimeout,
		MaxPoolSize:      uint64(yamlObj.MaxPoolSize),
		IdleConnTimeout:  yamlObj.IdleConnTimeout,
		InstanceIDs:      instanceIDs,
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
